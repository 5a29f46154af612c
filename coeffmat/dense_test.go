package coeffmat_test

import (
	"testing"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/coeffmat"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/stretchr/testify/require"
)

func ring() *poly.RingDescriptor {
	return poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
}

func TestNewDenseInvalidShape(t *testing.T) {
	_, err := coeffmat.NewDense(ring(), 0, 5)
	require.ErrorIs(t, err, coeffmat.ErrBadShape)

	_, err = coeffmat.NewDense(ring(), 5, 0)
	require.ErrorIs(t, err, coeffmat.ErrBadShape)
}

func TestRowsColsAndZeroFill(t *testing.T) {
	r := ring()
	m, err := coeffmat.NewDense(r, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	p, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, p.IsZero())
}

func TestAtSetOutOfRange(t *testing.T) {
	m, err := coeffmat.NewDense(ring(), 2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, coeffmat.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, coeffmat.ErrOutOfRange)

	err = m.Set(2, 0, poly.Zero(ring()))
	require.ErrorIs(t, err, coeffmat.ErrOutOfRange)
}

func TestSetGetRoundTrip(t *testing.T) {
	r := ring()
	m, err := coeffmat.NewDense(r, 2, 2)
	require.NoError(t, err)

	one := poly.New(r, poly.Term{Mon: monomial.New(2), Coe: coeff.NewRat(1, 1)})
	require.NoError(t, m.Set(0, 1, one))

	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, got.Equal(one))
}

func TestFromRowsBuildsSparseMatrix(t *testing.T) {
	r := ring()
	one := poly.New(r, poly.Term{Mon: monomial.New(2), Coe: coeff.NewRat(1, 1)})
	rows := []map[int]poly.Polynomial{
		{1: one},
		{},
	}
	m, err := coeffmat.FromRows(r, 2, rows)
	require.NoError(t, err)
	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, got.Equal(one))

	got, err = m.At(1, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}
