package groebner

import (
	"testing"

	"github.com/polyra/groebner/coeff"
	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
	"github.com/stretchr/testify/assert"
)

// These tests exercise basisState.productCriterion directly, against
// a queue whose membership is set up by hand, rather than inferring
// whether the criterion fired from the shape of a final basis — a
// final-basis assertion alone cannot distinguish "the criterion
// discarded a redundant pair" from "the criterion is disabled and the
// redundant S-polynomial reduced to zero anyway", which is exactly
// what happens for the spec §8 G=[xy,xz,yz] scenario.
func rationalRing3() *poly.RingDescriptor {
	return poly.NewRing(3, monomial.DegRevLex, coeff.Rational)
}

func elemXYZ(x, y, z int32) modvec.Element {
	r := rationalRing3()
	return modvec.FromPolynomial(poly.New(r, poly.Term{Mon: monomial.Monomial{x, y, z}, Coe: coeff.NewRat(1, 1)}))
}

// TestProductCriterionDiscardsWhenNeitherRelatedPairIsQueued covers
// the discard branch: a third live element l shares the candidate
// pair's leading row, lm(l) divides the pair's lcm, and neither (i,l)
// nor (j,l) is currently enqueued — spec §4.G step 4b's condition for
// a safe discard.
func TestProductCriterionDiscardsWhenNeitherRelatedPairIsQueued(t *testing.T) {
	xy, xz, yz := elemXYZ(1, 1, 0), elemXYZ(1, 0, 1), elemXYZ(0, 1, 1)

	s := newBasisState(rationalRing3().Order, false)
	i := s.insert(xy, nil)
	j := s.insert(xz, nil)
	s.insert(yz, nil)

	// Queue is empty: (i,_) and (j,_) are both already "handled", so
	// yz's leading monomial dividing lcm(xy,xz)=xyz makes (i,j) safe to
	// discard.
	assert.True(t, s.productCriterion(i, j, xy, xz))
}

// TestProductCriterionKeepsWhenARelatedPairIsStillQueued covers the
// converse: the same three elements, but one of the two related pairs
// is still enqueued, so the third element cannot yet certify (i,j) as
// redundant.
func TestProductCriterionKeepsWhenARelatedPairIsStillQueued(t *testing.T) {
	xy, xz, yz := elemXYZ(1, 1, 0), elemXYZ(1, 0, 1), elemXYZ(0, 1, 1)

	s := newBasisState(rationalRing3().Order, false)
	i := s.insert(xy, nil)
	j := s.insert(xz, nil)
	k := s.insert(yz, nil)
	s.pairs.Push(j, k, monomial.LCMDegree(xz.LeadingMonomial(), yz.LeadingMonomial()))

	assert.False(t, s.productCriterion(i, j, xy, xz))
}

// TestProductCriterionRequiresMatchingLeadingRow covers the
// row-mismatch precondition shared with pair seeding: elements whose
// leading rows differ can never trigger the criterion, since their
// S-polynomial's leading row (and thus any third element's relevance)
// is undefined.
func TestProductCriterionRequiresMatchingLeadingRow(t *testing.T) {
	r := poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
	a := modvec.Element{Rows: []poly.Polynomial{poly.New(r, poly.Term{Mon: monomial.Monomial{1, 0}, Coe: coeff.NewRat(1, 1)}), poly.Zero(r)}}
	b := modvec.Element{Rows: []poly.Polynomial{poly.Zero(r), poly.New(r, poly.Term{Mon: monomial.Monomial{0, 1}, Coe: coeff.NewRat(1, 1)})}}

	s := newBasisState(r.Order, false)
	i := s.insert(a, nil)
	j := s.insert(b, nil)

	assert.False(t, s.productCriterion(i, j, a, b))
}
