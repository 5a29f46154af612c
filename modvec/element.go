package modvec

import (
	"fmt"

	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
)

// Element is a length-k vector of polynomials over a shared
// poly.RingDescriptor: one element of the free module (poly.RingDescriptor)^k.
type Element struct {
	Rows []poly.Polynomial
}

// FromPolynomial wraps a single polynomial as the k=1 module element —
// the representation the Buchberger engine uses internally for plain
// ideal membership computations.
func FromPolynomial(p poly.Polynomial) Element {
	return Element{Rows: []poly.Polynomial{p}}
}

// FromPolynomials wraps each of ps as its own k=1 Element.
func FromPolynomials(ps []poly.Polynomial) []Element {
	out := make([]Element, len(ps))
	for i, p := range ps {
		out[i] = FromPolynomial(p)
	}
	return out
}

// Zero returns the zero element of (r)^k.
func Zero(r *poly.RingDescriptor, k int) Element {
	rows := make([]poly.Polynomial, k)
	for i := range rows {
		rows[i] = poly.Zero(r)
	}
	return Element{Rows: rows}
}

// Arity returns k, the vector length.
func (e Element) Arity() int {
	return len(e.Rows)
}

// IsZero reports whether every row is the zero polynomial.
func (e Element) IsZero() bool {
	for _, row := range e.Rows {
		if !row.IsZero() {
			return false
		}
	}
	return true
}

// LeadingRow returns the smallest index i with Rows[i] nonzero, or -1 if
// e is zero.
func (e Element) LeadingRow() int {
	for i, row := range e.Rows {
		if !row.IsZero() {
			return i
		}
	}
	return -1
}

// LeadingTerm returns the leading term of the leading row and true, or
// the zero Term and false when e is zero.
func (e Element) LeadingTerm() (poly.Term, bool) {
	row := e.LeadingRow()
	if row < 0 {
		return poly.Term{}, false
	}
	return e.Rows[row].LeadingTerm()
}

// LeadingMonomial returns the leading term's monomial, or nil when e is
// zero.
func (e Element) LeadingMonomial() monomial.Monomial {
	t, ok := e.LeadingTerm()
	if !ok {
		return nil
	}
	return t.Mon
}

// Signature returns e's (row, monomial) signature and true, or the zero
// Signature and false when e is zero.
func (e Element) Signature() (Signature, bool) {
	row := e.LeadingRow()
	if row < 0 {
		return Signature{}, false
	}
	mon := e.Rows[row].LeadingMonomial()
	return Signature{Row: row, Mon: mon}, true
}

// Clone returns a deep, independent copy of e.
func (e Element) Clone() Element {
	rows := make([]poly.Polynomial, len(e.Rows))
	for i, row := range e.Rows {
		rows[i] = row.Clone()
	}
	return Element{Rows: rows}
}

// Add returns e+f, row by row. Panics if e and f have different arity.
func (e Element) Add(f Element) Element {
	e.checkArity(f)
	rows := make([]poly.Polynomial, len(e.Rows))
	for i := range e.Rows {
		rows[i] = e.Rows[i].Add(f.Rows[i])
	}
	return Element{Rows: rows}
}

// Sub returns e-f, row by row.
func (e Element) Sub(f Element) Element {
	e.checkArity(f)
	rows := make([]poly.Polynomial, len(e.Rows))
	for i := range e.Rows {
		rows[i] = e.Rows[i].Sub(f.Rows[i])
	}
	return Element{Rows: rows}
}

// MulTerm returns t*e: every row scaled by the single term t.
func (e Element) MulTerm(t poly.Term) Element {
	rows := make([]poly.Polynomial, len(e.Rows))
	for i := range e.Rows {
		rows[i] = e.Rows[i].MulTerm(t)
	}
	return Element{Rows: rows}
}

// Equal reports whether e and f have identical rows.
func (e Element) Equal(f Element) bool {
	if len(e.Rows) != len(f.Rows) {
		return false
	}
	for i := range e.Rows {
		if !e.Rows[i].Equal(f.Rows[i]) {
			return false
		}
	}
	return true
}

func (e Element) checkArity(f Element) {
	if len(e.Rows) != len(f.Rows) {
		panic(fmt.Sprintf("modvec: arity mismatch (%d vs %d)", len(e.Rows), len(f.Rows)))
	}
}

func (e Element) String() string {
	s := "("
	for i, row := range e.Rows {
		if i > 0 {
			s += ", "
		}
		s += row.String()
	}
	return s + ")"
}
