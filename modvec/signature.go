package modvec

import "github.com/polyra/groebner/monomial"

// Signature is a module term order key: (row, monomial). Signatures are
// compared by row first — a *smaller* row ranks *higher*, to match
// standard module term orders where earlier free-module generators
// dominate — then by monomial order within the row.
type Signature struct {
	Row int
	Mon monomial.Monomial
}

// Less reports whether a ranks below b under the module term order
// induced by order.
func Less(order monomial.Order, a, b Signature) bool {
	if a.Row != b.Row {
		return a.Row > b.Row // larger row index ranks lower
	}
	return order.Less(a.Mon, b.Mon)
}

// SameRow reports whether a and b share a leading row — the
// precondition for a nonzero S-polynomial, and for a divisor
// relationship to be meaningful between two module elements.
func SameRow(a, b Signature) bool {
	return a.Row == b.Row
}
