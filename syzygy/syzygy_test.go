package syzygy_test

import (
	"testing"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/groebner"
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/polyra/groebner/syzygy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qRing2() *poly.RingDescriptor {
	return poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
}

func term2(x, y int32, n, d int64) poly.Term {
	return poly.Term{Mon: monomial.Monomial{x, y}, Coe: coeff.NewRat(n, d)}
}

func elem2(p poly.Polynomial) modvec.Element {
	return modvec.FromPolynomial(p)
}

// checkIsSyzygy verifies Σ_k row[k]·basis[k] == 0 for a single sparse
// syzygy row, reconstructing row from the matrix rather than assuming
// its internal representation.
func checkIsSyzygy(t *testing.T, r *poly.RingDescriptor, row []poly.Polynomial, basis []modvec.Element) {
	t.Helper()
	sum := poly.Zero(r)
	for k, coefPoly := range row {
		if coefPoly.IsZero() {
			continue
		}
		contribution := poly.Zero(r)
		for _, term := range coefPoly.Terms {
			contribution = contribution.Add(basis[k].Rows[0].MulTerm(term))
		}
		sum = sum.Add(contribution)
	}
	assert.True(t, sum.IsZero(), "row does not sum to zero: %v", sum)
}

func TestSyzygiesOfClassicBasisSumToZero(t *testing.T) {
	r := qRing2()
	g1 := elem2(poly.New(r, term2(2, 0, 1, 1), term2(0, 1, -1, 1))) // x^2-y
	g2 := elem2(poly.New(r, term2(3, 0, 1, 1), term2(1, 0, -1, 1))) // x^3-x

	basis, err := groebner.Basis([]modvec.Element{g1, g2})
	require.NoError(t, err)
	require.True(t, len(basis) >= 2)

	matrix, err := syzygy.Syzygies(basis)
	require.NoError(t, err)
	require.NotNil(t, matrix)
	require.Equal(t, len(basis), matrix.Cols())

	for i := 0; i < matrix.Rows(); i++ {
		row := make([]poly.Polynomial, matrix.Cols())
		for j := 0; j < matrix.Cols(); j++ {
			row[j], err = matrix.At(i, j)
			require.NoError(t, err)
		}
		checkIsSyzygy(t, r, row, basis)
	}
}

func TestSyzygiesOfSingletonBasisIsEmpty(t *testing.T) {
	r := qRing2()
	g1 := elem2(poly.New(r, term2(1, 0, 1, 1))) // x

	matrix, err := syzygy.Syzygies([]modvec.Element{g1})
	require.NoError(t, err)
	assert.Nil(t, matrix)
}

func TestSyzygiesRejectsNonGroebnerBasis(t *testing.T) {
	r := qRing2()
	// x^2+y, xy is not a Groebner basis under degrevlex: their
	// S-polynomial reduces to the nonzero remainder y^2.
	g1 := elem2(poly.New(r, term2(2, 0, 1, 1), term2(0, 1, 1, 1))) // x^2+y
	g2 := elem2(poly.New(r, term2(1, 1, 1, 1)))                    // xy

	_, err := syzygy.Syzygies([]modvec.Element{g1, g2})
	require.ErrorIs(t, err, syzygy.ErrNotAGroebnerBasis)
}

func TestSyzygiesOfBasisFromRedundantGeneratorsSumToZero(t *testing.T) {
	r := qRing2()
	// xy, x, y: xy is redundant (x divides it), so groebner.Basis drops
	// it and Syzygies sees the basis {x, y}; every syzygy row it returns
	// must still sum to zero against that basis.
	g1 := elem2(poly.New(r, term2(1, 1, 1, 1))) // xy
	g2 := elem2(poly.New(r, term2(1, 0, 1, 1))) // x
	g3 := elem2(poly.New(r, term2(0, 1, 1, 1))) // y

	basis, err := groebner.Basis([]modvec.Element{g1, g2, g3})
	require.NoError(t, err)

	matrix, err := syzygy.Syzygies(basis)
	require.NoError(t, err)
	if matrix == nil {
		return
	}
	for i := 0; i < matrix.Rows(); i++ {
		row := make([]poly.Polynomial, matrix.Cols())
		for j := 0; j < matrix.Cols(); j++ {
			row[j], err = matrix.At(i, j)
			require.NoError(t, err)
		}
		checkIsSyzygy(t, r, row, basis)
	}
}
