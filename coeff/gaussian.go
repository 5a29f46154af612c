package coeff

import (
	"fmt"
	"math/big"
)

// Gaussian is the ring ℤ[i] of Gaussian integers, a+bi with a,b ∈ ℤ.
// MaybeDiv succeeds only when the quotient itself lies in ℤ[i]: it
// computes a/b = a·conj(b)/|b|² and requires both components of the
// numerator to be exactly divisible by |b|².
var Gaussian Ring = gaussianRing{}

type gaussianValue struct {
	re, im *big.Int
}

type gaussianRing struct{}

func gOf(v Value) gaussianValue { return v.(gaussianValue) }

// NewGaussian builds a Gaussian-integer coeff.Value re+im*i.
func NewGaussian(re, im int64) Value {
	return gaussianValue{re: big.NewInt(re), im: big.NewInt(im)}
}

func (gaussianRing) Zero() Value { return gaussianValue{new(big.Int), new(big.Int)} }
func (gaussianRing) One() Value  { return gaussianValue{big.NewInt(1), new(big.Int)} }

func (gaussianRing) IsZero(v Value) bool {
	g := gOf(v)
	return g.re.Sign() == 0 && g.im.Sign() == 0
}

func (gaussianRing) Equal(a, b Value) bool {
	ga, gb := gOf(a), gOf(b)
	return ga.re.Cmp(gb.re) == 0 && ga.im.Cmp(gb.im) == 0
}

func (gaussianRing) Add(a, b Value) Value {
	ga, gb := gOf(a), gOf(b)
	return gaussianValue{new(big.Int).Add(ga.re, gb.re), new(big.Int).Add(ga.im, gb.im)}
}

func (gaussianRing) Sub(a, b Value) Value {
	ga, gb := gOf(a), gOf(b)
	return gaussianValue{new(big.Int).Sub(ga.re, gb.re), new(big.Int).Sub(ga.im, gb.im)}
}

func (gaussianRing) Neg(a Value) Value {
	ga := gOf(a)
	return gaussianValue{new(big.Int).Neg(ga.re), new(big.Int).Neg(ga.im)}
}

func (gaussianRing) Mul(a, b Value) Value {
	ga, gb := gOf(a), gOf(b)
	// (ar+ai*i)(br+bi*i) = (ar*br - ai*bi) + (ar*bi + ai*br)*i
	t1 := new(big.Int).Mul(ga.re, gb.re)
	t2 := new(big.Int).Mul(ga.im, gb.im)
	re := new(big.Int).Sub(t1, t2)
	t3 := new(big.Int).Mul(ga.re, gb.im)
	t4 := new(big.Int).Mul(ga.im, gb.re)
	im := new(big.Int).Add(t3, t4)
	return gaussianValue{re, im}
}

func (gaussianRing) MaybeDiv(a, b Value) (Value, bool) {
	ga, gb := gOf(a), gOf(b)
	norm := new(big.Int).Add(new(big.Int).Mul(gb.re, gb.re), new(big.Int).Mul(gb.im, gb.im))
	if norm.Sign() == 0 {
		return nil, false
	}
	conj := gaussianValue{gb.re, new(big.Int).Neg(gb.im)}
	num := gaussianRing{}.Mul(ga, conj).(gaussianValue)

	re, rrem := new(big.Int).QuoRem(num.re, norm, new(big.Int))
	if rrem.Sign() != 0 {
		return nil, false
	}
	im, irem := new(big.Int).QuoRem(num.im, norm, new(big.Int))
	if irem.Sign() != 0 {
		return nil, false
	}
	return gaussianValue{re, im}, true
}

func (gaussianRing) String(v Value) string {
	g := gOf(v)
	return fmt.Sprintf("(%s+%si)", g.re.String(), g.im.String())
}
