package syzygy

import (
	"fmt"

	"github.com/polyra/groebner/coeffmat"
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/polyra/groebner/reduce"
)

// Syzygies computes a spanning set of syzygies of basis, a completed
// Gröbner basis: a dense matrix with one row per syzygy found and one
// column per element of basis, satisfying matrix·basis = 0. Returns
// (nil, nil) when basis has fewer than two row-matching elements, since
// there is then no pair to build a syzygy from.
func Syzygies(basis []modvec.Element) (*coeffmat.Dense, error) {
	ring := ringOf(basis)
	if ring == nil {
		return nil, nil
	}

	var found []modvec.Element
	var rows []map[int]poly.Polynomial

	for i := 0; i < len(basis); i++ {
		a := basis[i]
		aRow := a.LeadingRow()
		if aRow < 0 {
			continue
		}
		for j := i + 1; j < len(basis); j++ {
			b := basis[j]
			if b.LeadingRow() != aRow {
				continue
			}

			s, ma, mb := sPolynomialAndMultipliers(a, b, aRow)
			quotients, remainder := reduce.DivRemVec(s, basis)
			if !remainder.IsZero() {
				return nil, fmt.Errorf("syzygy: pair (%d,%d): %w", i, j, ErrNotAGroebnerBasis)
			}

			syz := modvec.Element{Rows: quotients}
			syz.Rows[i] = syz.Rows[i].Sub(poly.New(ring, ma))
			syz.Rows[j] = syz.Rows[j].Add(poly.New(ring, mb))

			reduced := reduce.Rem(syz, found)
			if !reduced.IsZero() {
				rows = append(rows, sparseRow(reduced))
			}
			found = append(found, syz)
		}
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return coeffmat.FromRows(ring, len(basis), rows)
}

// sPolynomialAndMultipliers builds m_a·a - m_b·b, where m_a, m_b are the
// lcm multipliers of a and b's shared-row leading terms, and returns the
// multiplier terms alongside the S-polynomial for the caller's syzygy
// row adjustment.
func sPolynomialAndMultipliers(a, b modvec.Element, row int) (modvec.Element, poly.Term, poly.Term) {
	at, _ := a.Rows[row].LeadingTerm()
	bt, _ := b.Rows[row].LeadingTerm()
	ma, mb := monomial.LCMMultipliers(at.Mon, bt.Mon)
	mta := poly.Term{Mon: ma, Coe: bt.Coe}
	mtb := poly.Term{Mon: mb, Coe: at.Coe}
	s := a.MulTerm(mta).Sub(b.MulTerm(mtb))
	return s, mta, mtb
}

func sparseRow(e modvec.Element) map[int]poly.Polynomial {
	out := make(map[int]poly.Polynomial)
	for i, p := range e.Rows {
		if !p.IsZero() {
			out[i] = p
		}
	}
	return out
}

func ringOf(elems []modvec.Element) *poly.RingDescriptor {
	for _, e := range elems {
		for _, row := range e.Rows {
			if row.Ring != nil {
				return row.Ring
			}
		}
	}
	return nil
}
