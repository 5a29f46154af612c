package reduce

import (
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
)

// Rem is the public rem(f, G) composite: lead-reduce f to fixpoint
// against G, then full-reduce the result to fixpoint. The lead phase
// looks up a divisor of the current leading monomial through a
// BasisView; in the full (tail) phase, whenever a division against some
// G[i] succeeds, the scan restarts at G[0]. Lead reduction terminates
// because the leading monomial of the working remainder strictly
// decreases under the order at every successful lead reduction.
func Rem(f modvec.Element, basis []modvec.Element) modvec.Element {
	_, r := DivRemVec(f, basis)
	return r
}

// DivRemVec is the public divrem(f, G) composite: it additionally
// accumulates, for each basis element, the sum of every quotient term
// used against it, satisfying f = remainder + Σ quotients[i]·G[i].
func DivRemVec(f modvec.Element, basis []modvec.Element) ([]poly.Polynomial, modvec.Element) {
	quotients := make([]poly.Polynomial, len(basis))
	ringOf := func() *poly.RingDescriptor {
		for _, row := range f.Rows {
			if row.Ring != nil {
				return row.Ring
			}
		}
		return nil
	}()
	for i := range quotients {
		if ringOf != nil {
			quotients[i] = poly.Zero(ringOf)
		}
	}

	f = leadFixpoint(f, basis, quotients)
	f = tailFixpoint(f, basis, quotients)
	return quotients, f
}

// leadFixpoint repeatedly cancels f's leading term against basis until
// no element shares its leading row and divides it, or the remainder
// is zero. Rather than rescanning basis from index 0 after every
// success (the reference "restart the cursor" strategy), it queries a
// BasisView for a divisor of the current leading monomial directly —
// termination is unaffected, since it depends only on the leading
// monomial strictly decreasing at every successful reduction, not on
// which divisor was used.
func leadFixpoint(f modvec.Element, basis []modvec.Element, quot []poly.Polynomial) modvec.Element {
	order := orderOf(basis)
	if order == nil {
		return f
	}
	view := NewBasisView(order, basis)
	for {
		row := f.LeadingRow()
		if row < 0 {
			return f
		}
		lm := f.Rows[row].LeadingMonomial()
		i, ok := view.FindDivisor(row, lm)
		if !ok {
			return f
		}
		newF, q, status := LeadDivRem(f, basis[i])
		if status == Unchanged {
			return f
		}
		f = newF
		accumulate(quot, i, q)
		if status == Zero {
			return f
		}
	}
}

// orderOf returns the monomial order shared by basis's nonzero
// elements, or nil if basis has none.
func orderOf(basis []modvec.Element) monomial.Order {
	for _, e := range basis {
		for _, r := range e.Rows {
			if r.Ring != nil {
				return r.Ring.Order
			}
		}
	}
	return nil
}

// tailFixpoint repeatedly applies DivRem (tail reduction) against basis
// with the same restart-on-success cursor behaviour, until no term of f
// is divisible by any basis leading monomial.
func tailFixpoint(f modvec.Element, basis []modvec.Element, quot []poly.Polynomial) modvec.Element {
	for {
		progressed := false
		for i, g := range basis {
			if g.IsZero() {
				continue
			}
			newF, q, status := DivRem(f, g)
			if status == Unchanged {
				continue
			}
			f = newF
			accumulate(quot, i, q)
			progressed = true
			if status == Zero {
				return f
			}
			break
		}
		if !progressed {
			return f
		}
	}
}

func accumulate(quot []poly.Polynomial, i int, q poly.Term) {
	if quot[i].Ring == nil {
		return
	}
	quot[i] = poly.New(quot[i].Ring, append(append([]poly.Term{}, quot[i].Terms...), q)...)
}
