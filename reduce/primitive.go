package reduce

import (
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/poly"
)

// LeadDivRem attempts to cancel the leading term of f using g. It
// succeeds only when f and g share a leading row (a module element can
// only be reduced by another whose nonzero rows start at the same
// index) and lm(g) | lm(f) with exact coefficient division.
// On success it returns (f-q·g, q, Reduced|Zero); on failure
// (f, zero Term, Unchanged).
func LeadDivRem(f, g modvec.Element) (modvec.Element, poly.Term, Status) {
	fRow := f.LeadingRow()
	gRow := g.LeadingRow()
	if fRow < 0 || gRow < 0 || fRow != gRow {
		return f, poly.Term{}, Unchanged
	}

	flt, _ := f.Rows[fRow].LeadingTerm()
	glt, _ := g.Rows[gRow].LeadingTerm()

	qm, ok := glt.Mon.MaybeDiv(flt.Mon)
	if !ok {
		return f, poly.Term{}, Unchanged
	}
	cr := f.Rows[fRow].Ring.Coeff
	qc, ok := cr.MaybeDiv(flt.Coe, glt.Coe)
	if !ok {
		return f, poly.Term{}, Unchanged
	}

	q := poly.Term{Mon: qm, Coe: qc}
	newF := f.Sub(g.MulTerm(q))
	if newF.IsZero() {
		return newF, q, Zero
	}
	return newF, q, Reduced
}

// DivRem scans every term of f's row matching g's leading row — not
// just f's own leading term — for one divisible by lm(g), and cancels
// the first one found. It is the tail-reduction primitive: cross-row
// cancellation is never attempted, since rows are independent free
// generators.
func DivRem(f, g modvec.Element) (modvec.Element, poly.Term, Status) {
	gRow := g.LeadingRow()
	if gRow < 0 || gRow >= f.Arity() {
		return f, poly.Term{}, Unchanged
	}
	row := f.Rows[gRow]
	if row.IsZero() {
		return f, poly.Term{}, Unchanged
	}
	glt, _ := g.Rows[gRow].LeadingTerm()
	cr := row.Ring.Coeff

	for _, t := range row.Terms {
		qm, ok := glt.Mon.MaybeDiv(t.Mon)
		if !ok {
			continue
		}
		qc, ok := cr.MaybeDiv(t.Coe, glt.Coe)
		if !ok {
			continue
		}
		q := poly.Term{Mon: qm, Coe: qc}
		newF := f.Sub(g.MulTerm(q))
		if newF.IsZero() {
			return newF, q, Zero
		}
		return newF, q, Reduced
	}
	return f, poly.Term{}, Unchanged
}
