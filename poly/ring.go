package poly

import (
	"fmt"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/monomial"
)

// RingDescriptor is a polynomial ring's external contract: nothing
// more than a variable count, a coefficient ring, and a monomial
// order. Names is optional and purely cosmetic (variable naming is an
// out-of-scope, pretty-printing collaborator's concern) — the core
// never reads it.
type RingDescriptor struct {
	N     int
	Order monomial.Order
	Coeff coeff.Ring
	Names []string
}

// NewRing builds a RingDescriptor for n variables.
func NewRing(n int, order monomial.Order, cr coeff.Ring) *RingDescriptor {
	return &RingDescriptor{N: n, Order: order, Coeff: cr}
}

// Compatible reports whether a and b are the same ring descriptor (by
// identity) or at least share an arity — arity mismatches are a certain
// incompatibility; sharing one *RingDescriptor instance across every
// polynomial built for a single groebner_basis/divrem call is the
// supported way to guarantee the coefficient rings themselves agree, since
// coeff.Ring values are otherwise opaque to this package (see
// groebner.ErrIncompatibleRings).
func (r *RingDescriptor) Compatible(o *RingDescriptor) bool {
	return r == o || r.N == o.N
}

func (r *RingDescriptor) checkArity(n int) {
	if n != r.N {
		panic(fmt.Sprintf("poly: monomial arity %d does not match ring arity %d", n, r.N))
	}
}
