package groebner

import (
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/polyra/groebner/reduce"
)

// lcmMultiplierTerms returns (m_a, m_b): m_a*lt(a) and m_b*lt(b) both
// equal lcm(lt(a), lt(b)) exactly, including the coefficient, because
// each multiplier borrows the other term's coefficient.
func lcmMultiplierTerms(a, b poly.Term) (poly.Term, poly.Term) {
	ma, mb := monomial.LCMMultipliers(a.Mon, b.Mon)
	return poly.Term{Mon: ma, Coe: b.Coe}, poly.Term{Mon: mb, Coe: a.Coe}
}

// sPolynomial builds m_a*a - m_b*b and, when tracking is enabled, the
// provisional transformation row m_a*tr(a) - m_b*tr(b).
func sPolynomial(a, b modvec.Element, trA, trB row) (modvec.Element, row) {
	aRow := a.LeadingRow()
	at, _ := a.Rows[aRow].LeadingTerm()
	bt, _ := b.Rows[aRow].LeadingTerm()
	ma, mb := lcmMultiplierTerms(at, bt)

	s := a.MulTerm(ma).Sub(b.MulTerm(mb))
	if trA == nil && trB == nil {
		return s, nil
	}
	return s, subRow(scaleRow(trA, ma), scaleRow(trB, mb))
}

// reduceWithTransform lead-then-full reduces e against basis, threading
// the accompanying transformation rows term-by-term so that every
// subtraction inside the reduction is mirrored in tr. basisRows[i] may
// be nil when transformation tracking is off. Returns the reduced
// element, its updated row, and whether anything changed.
func reduceWithTransform(e modvec.Element, tr row, basis []modvec.Element, basisRows []row) (modvec.Element, row, bool) {
	changed := false
	step := func(divide func(modvec.Element, modvec.Element) (modvec.Element, poly.Term, reduce.Status)) bool {
		for {
			progressed := false
			for i, g := range basis {
				if g.IsZero() {
					continue
				}
				newE, q, status := divide(e, g)
				if status == reduce.Unchanged {
					continue
				}
				e = newE
				if tr != nil && basisRows[i] != nil {
					tr = subRow(tr, scaleRow(basisRows[i], q))
				}
				changed = true
				progressed = true
				if status == reduce.Zero {
					return true
				}
				break
			}
			if !progressed {
				return false
			}
		}
	}
	if step(reduce.LeadDivRem) {
		return e, tr, changed
	}
	if step(reduce.DivRem) {
		return e, tr, changed
	}
	return e, tr, changed
}
