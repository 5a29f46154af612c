package groebner

import (
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
)

// row is a transformation matrix row: column (original-input index) to
// the polynomial coefficient multiplying that input. B[i] = Σ_j
// T[i,j]·G[j] needs T[i,j] to be a polynomial, not a scalar —
// S-polynomial construction multiplies by monomial terms (m_a, m_b),
// so provenance tracking must carry full polynomial multipliers
// through every combination.
type row map[int]poly.Polynomial

// unitRow returns the row selecting column col with coefficient 1.
func unitRow(r *poly.RingDescriptor, col int) row {
	one := poly.New(r, poly.Term{Mon: monomial.New(r.N), Coe: r.Coeff.One()})
	return row{col: one}
}

// scaleRow returns t*r, dropping any column that becomes zero.
func scaleRow(r row, t poly.Term) row {
	out := make(row, len(r))
	for col, p := range r {
		scaled := p.MulTerm(t)
		if !scaled.IsZero() {
			out[col] = scaled
		}
	}
	return out
}

// subRow returns a-b, column by column.
func subRow(a, b row) row {
	out := make(row, len(a)+len(b))
	for col, p := range a {
		out[col] = p
	}
	for col, p := range b {
		if existing, ok := out[col]; ok {
			diff := existing.Sub(p)
			if diff.IsZero() {
				delete(out, col)
			} else {
				out[col] = diff
			}
			continue
		}
		if neg := p.Neg(); !neg.IsZero() {
			out[col] = neg
		}
	}
	return out
}
