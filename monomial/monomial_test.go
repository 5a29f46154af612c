package monomial_test

import (
	"testing"

	"github.com/polyra/groebner/monomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulDividesMaybeDiv(t *testing.T) {
	a := monomial.Monomial{2, 0, 1} // x0^2 x2
	b := monomial.Monomial{3, 1, 1} // x0^3 x1 x2

	assert.True(t, a.Divides(b))
	assert.False(t, b.Divides(a))

	q, ok := a.MaybeDiv(b)
	require.True(t, ok)
	assert.Equal(t, monomial.Monomial{1, 1, 0}, q)

	_, ok = b.MaybeDiv(a)
	assert.False(t, ok)

	assert.Equal(t, monomial.Monomial{5, 1, 2}, a.Mul(b))
}

func TestLCMAndMultipliers(t *testing.T) {
	a := monomial.Monomial{2, 0}
	b := monomial.Monomial{0, 3}

	l := a.LCM(b)
	assert.Equal(t, monomial.Monomial{2, 3}, l)
	assert.Equal(t, 5, monomial.LCMDegree(a, b))

	ma, mb := monomial.LCMMultipliers(a, b)
	assert.Equal(t, monomial.Monomial{0, 3}, ma)
	assert.Equal(t, monomial.Monomial{2, 0}, mb)
	assert.True(t, a.Mul(ma).Equal(l))
	assert.True(t, b.Mul(mb).Equal(l))
}

func TestTotalDegreeAndIsOne(t *testing.T) {
	assert.True(t, monomial.New(3).IsOne())
	m := monomial.Monomial{1, 2, 0}
	assert.Equal(t, 3, m.TotalDegree())
	assert.False(t, m.IsOne())
}

func TestArityMismatchPanics(t *testing.T) {
	a := monomial.Monomial{1}
	b := monomial.Monomial{1, 2}
	assert.Panics(t, func() { a.Mul(b) })
}
