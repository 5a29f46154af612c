// errors.go — sentinel errors for the coeffmat package, following the
// teacher's matrix/errors.go convention: sentinel vars only, checked
// with errors.Is, never wrapped with a formatted string at definition
// site.
//
// Priority when more than one validation fails: ErrBadShape (invalid
// dimensions at construction) is checked before ErrOutOfRange (a bad
// At/Set index into an already-valid matrix).
package coeffmat

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("coeffmat: invalid shape")

	// ErrOutOfRange is returned when a row or column index is outside
	// the matrix's bounds.
	ErrOutOfRange = errors.New("coeffmat: index out of range")
)
