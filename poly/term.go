package poly

import (
	"fmt"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/monomial"
)

// Term is a (monomial, coefficient) pair. A Term with a zero coefficient
// is never stored inside a Polynomial, but can occur transiently as an
// arithmetic intermediate (e.g. the quotient term leaddivrem computes
// before subtracting).
type Term struct {
	Mon monomial.Monomial
	Coe coeff.Value
}

// Mul returns the product of two terms under cr: monomials multiply
// pointwise, coefficients multiply in cr.
func (t Term) Mul(o Term, cr coeff.Ring) Term {
	return Term{Mon: t.Mon.Mul(o.Mon), Coe: cr.Mul(t.Coe, o.Coe)}
}

// Neg returns -t.
func (t Term) Neg(cr coeff.Ring) Term {
	return Term{Mon: t.Mon, Coe: cr.Neg(t.Coe)}
}

func (t Term) String(cr coeff.Ring) string {
	return fmt.Sprintf("%s*%s", cr.String(t.Coe), t.Mon.String())
}
