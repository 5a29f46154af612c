package coeff

import "math/big"

// Integer is the ring ℤ, backed by math/big.Int. MaybeDiv only succeeds
// on exact (remainder-zero) division; a non-unit division reports
// "not divisible" rather than raising an error.
var Integer Ring = integerRing{}

type integerRing struct{}

func intOf(v Value) *big.Int { return v.(*big.Int) }

func (integerRing) Zero() Value { return new(big.Int) }
func (integerRing) One() Value  { return big.NewInt(1) }

func (integerRing) IsZero(v Value) bool { return intOf(v).Sign() == 0 }

func (integerRing) Equal(a, b Value) bool { return intOf(a).Cmp(intOf(b)) == 0 }

func (integerRing) Add(a, b Value) Value { return new(big.Int).Add(intOf(a), intOf(b)) }
func (integerRing) Sub(a, b Value) Value { return new(big.Int).Sub(intOf(a), intOf(b)) }
func (integerRing) Neg(a Value) Value    { return new(big.Int).Neg(intOf(a)) }
func (integerRing) Mul(a, b Value) Value { return new(big.Int).Mul(intOf(a), intOf(b)) }

func (integerRing) MaybeDiv(a, b Value) (Value, bool) {
	bb := intOf(b)
	if bb.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int).QuoRem(intOf(a), bb, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}

func (integerRing) String(v Value) string { return intOf(v).String() }

// NewInt builds a *big.Int coeff.Value for use with the Integer ring.
func NewInt(n int64) Value { return big.NewInt(n) }
