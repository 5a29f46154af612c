package poly_test

import (
	"testing"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qRing() *poly.RingDescriptor {
	return poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
}

func term(x, y int32, n, d int64) poly.Term {
	return poly.Term{Mon: monomial.Monomial{x, y}, Coe: coeff.NewRat(n, d)}
}

func TestNewCanonicalizesDuplicatesAndZeros(t *testing.T) {
	r := qRing()
	p := poly.New(r,
		term(1, 0, 1, 1), // x
		term(0, 1, 2, 1), // 2y
		term(1, 0, -1, 1), // -x, cancels with the first
	)
	require.Len(t, p.Terms, 1)
	lt, ok := p.LeadingTerm()
	require.True(t, ok)
	assert.Equal(t, monomial.Monomial{0, 1}, lt.Mon)
}

func TestAddSubRoundTrip(t *testing.T) {
	r := qRing()
	p := poly.New(r, term(1, 0, 1, 1), term(0, 1, 1, 1))
	q := poly.New(r, term(1, 0, 1, 1))

	sum := p.Add(q)
	diff := sum.Sub(q)
	assert.True(t, diff.Equal(p))
}

func TestLeadingTermZeroPolynomial(t *testing.T) {
	r := qRing()
	z := poly.Zero(r)
	assert.True(t, z.IsZero())
	_, ok := z.LeadingTerm()
	assert.False(t, ok)
	assert.Nil(t, z.LeadingMonomial())
}

func TestMulTermScalesMonomialsAndCoefficients(t *testing.T) {
	r := qRing()
	p := poly.New(r, term(1, 0, 1, 1), term(0, 1, 1, 1))
	scaled := p.MulTerm(poly.Term{Mon: monomial.Monomial{1, 0}, Coe: coeff.NewRat(2, 1)})
	want := poly.New(r, term(2, 0, 2, 1), term(1, 1, 2, 1))
	assert.True(t, scaled.Equal(want))
}

func TestArityMismatchPanics(t *testing.T) {
	r := qRing()
	assert.Panics(t, func() {
		poly.New(r, poly.Term{Mon: monomial.Monomial{1}, Coe: coeff.NewRat(1, 1)})
	})
}
