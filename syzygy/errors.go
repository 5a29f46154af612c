// errors.go — sentinel errors for the syzygy package, following the
// teacher's builder/errors.go convention: sentinel vars only, checked
// with errors.Is, never wrapped with a formatted string at definition
// site.
package syzygy

import "errors"

// ErrNotAGroebnerBasis is returned when some row-matching pair's
// S-polynomial does not reduce to zero against the supplied basis —
// the input was not actually a Gröbner basis, so no syzygy relation
// can be derived from the failed division's quotient row.
var ErrNotAGroebnerBasis = errors.New("syzygy: input is not a Groebner basis")
