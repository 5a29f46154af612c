package coeff

import (
	"math/big"
)

// Rational is the field ℚ, backed by math/big.Rat. Every nonzero element
// divides every other, so MaybeDiv only fails on division by zero.
//
// math/big is the standard exact-arithmetic package reached for by the
// one retrieved example repo that itself implements ring arithmetic
// (JonasLazardGIT-SPRUCE's ntru/poly.go, IntPoly/ModQPoly); no
// third-party arbitrary-precision library appears anywhere in the
// retrieved pack, so there is nothing to wire here instead — see
// DESIGN.md.
var Rational Ring = rationalRing{}

type rationalRing struct{}

func ratOf(v Value) *big.Rat { return v.(*big.Rat) }

func (rationalRing) Zero() Value { return new(big.Rat) }
func (rationalRing) One() Value  { return big.NewRat(1, 1) }

func (rationalRing) IsZero(v Value) bool { return ratOf(v).Sign() == 0 }

func (rationalRing) Equal(a, b Value) bool { return ratOf(a).Cmp(ratOf(b)) == 0 }

func (rationalRing) Add(a, b Value) Value { return new(big.Rat).Add(ratOf(a), ratOf(b)) }
func (rationalRing) Sub(a, b Value) Value { return new(big.Rat).Sub(ratOf(a), ratOf(b)) }
func (rationalRing) Neg(a Value) Value    { return new(big.Rat).Neg(ratOf(a)) }
func (rationalRing) Mul(a, b Value) Value { return new(big.Rat).Mul(ratOf(a), ratOf(b)) }

func (rationalRing) MaybeDiv(a, b Value) (Value, bool) {
	bb := ratOf(b)
	if bb.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).Quo(ratOf(a), bb), true
}

func (rationalRing) String(v Value) string { return ratOf(v).RatString() }

// NewRat builds a *big.Rat coeff.Value from a numerator/denominator pair,
// for use with the Rational ring.
func NewRat(num, den int64) Value { return big.NewRat(num, den) }
