package reduce_test

import (
	"testing"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/polyra/groebner/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qRing() *poly.RingDescriptor {
	return poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
}

func term(x, y int32, n, d int64) poly.Term {
	return poly.Term{Mon: monomial.Monomial{x, y}, Coe: coeff.NewRat(n, d)}
}

func elem(p poly.Polynomial) modvec.Element {
	return modvec.FromPolynomial(p)
}

// x^2 - y reduced by x^2 - y itself must vanish.
func TestLeadDivRemCancelsToZero(t *testing.T) {
	r := qRing()
	f := elem(poly.New(r, term(2, 0, 1, 1), term(0, 1, -1, 1)))
	g := f
	_, _, status := reduce.LeadDivRem(f, g)
	assert.Equal(t, reduce.Zero, status)
}

func TestLeadDivRemUnchangedOnRowMismatch(t *testing.T) {
	r := qRing()
	f := modvec.Element{Rows: []poly.Polynomial{poly.Zero(r), poly.New(r, term(1, 0, 1, 1))}}
	g := modvec.Element{Rows: []poly.Polynomial{poly.New(r, term(1, 0, 1, 1)), poly.Zero(r)}}
	_, _, status := reduce.LeadDivRem(f, g)
	assert.Equal(t, reduce.Unchanged, status)
}

func TestDivRemScansNonLeadingTerms(t *testing.T) {
	r := qRing()
	// f = y^3 + x^2: lm(f) = y^3, untouched by lm(g) = x^2, but the
	// trailing x^2 term is an exact match.
	f := elem(poly.New(r, term(0, 3, 1, 1), term(2, 0, 1, 1)))
	g := elem(poly.New(r, term(2, 0, 1, 1), term(0, 1, -1, 1))) // x^2 - y
	newF, q, status := reduce.DivRem(f, g)
	require.Equal(t, reduce.Reduced, status)
	assert.Equal(t, monomial.Monomial{0, 0}, q.Mon)
	// y^3 + x^2 - (x^2 - y) = y^3 + y.
	want := poly.New(r, term(0, 3, 1, 1), term(0, 1, 1, 1))
	assert.True(t, newF.Rows[0].Equal(want))
}

// Classic example: x^2-y, x^3-x (not itself a Groebner basis: the
// ideal's basis also needs xy-x); rem(x^2*y - 1, G) should terminate at
// a remainder no lm(G[i]) divides.
func TestRemTerminatesAtIrreducibleRemainder(t *testing.T) {
	r := qRing()
	g1 := elem(poly.New(r, term(2, 0, 1, 1), term(0, 1, -1, 1))) // x^2 - y
	g2 := elem(poly.New(r, term(3, 0, 1, 1), term(1, 0, -1, 1))) // x^3 - x
	basis := []modvec.Element{g1, g2}

	f := elem(poly.New(r, term(2, 1, 1, 1), term(0, 0, -1, 1))) // x^2*y - 1
	rem := reduce.Rem(f, basis)

	lm1 := monomial.Monomial{2, 0}
	lm2 := monomial.Monomial{3, 0}
	for _, tm := range rem.Rows[0].Terms {
		assert.False(t, lm1.Divides(tm.Mon))
		assert.False(t, lm2.Divides(tm.Mon))
	}
}

func TestDivRemVecSatisfiesDivisionIdentity(t *testing.T) {
	r := qRing()
	g1 := elem(poly.New(r, term(2, 0, 1, 1), term(0, 1, -1, 1))) // x^2 - y
	basis := []modvec.Element{g1}

	f := elem(poly.New(r, term(2, 1, 1, 1), term(0, 0, -1, 1))) // x^2*y - 1
	quotients, rem := reduce.DivRemVec(f, basis)
	require.Len(t, quotients, 1)

	// f - rem should equal sum(quotients[i] * basis[i]).
	reconstructed := modvec.Zero(r, 1)
	for i, q := range quotients {
		for _, qt := range q.Terms {
			reconstructed = reconstructed.Add(basis[i].MulTerm(qt))
		}
	}
	lhs := f.Sub(rem)
	assert.True(t, lhs.Equal(reconstructed))
}

func TestBasisViewFindsDivisorAmongManyCandidates(t *testing.T) {
	order := monomial.DegRevLex
	r := qRing()
	elems := []modvec.Element{
		elem(poly.New(r, term(1, 0, 1, 1))), // x
		elem(poly.New(r, term(0, 1, 1, 1))), // y
		elem(poly.New(r, term(2, 0, 1, 1))), // x^2
	}
	view := reduce.NewBasisView(order, elems)

	idx, ok := view.FindDivisor(0, monomial.Monomial{2, 1})
	require.True(t, ok)
	assert.Contains(t, []int{0, 1, 2}, idx)

	_, ok = view.FindDivisor(0, monomial.Monomial{0, 0})
	assert.False(t, ok, "identity monomial has no nonzero divisor among x, y, x^2")
}

func TestBasisViewNoDivisorForUnrelatedRow(t *testing.T) {
	order := monomial.DegRevLex
	r := qRing()
	e := modvec.Element{Rows: []poly.Polynomial{poly.Zero(r), poly.New(r, term(1, 0, 1, 1))}}
	view := reduce.NewBasisView(order, []modvec.Element{e})

	_, ok := view.FindDivisor(0, monomial.Monomial{1, 0})
	assert.False(t, ok)

	idx, ok := view.FindDivisor(1, monomial.Monomial{1, 0})
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}
