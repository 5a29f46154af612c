package coeff

import (
	"fmt"
	"math/big"
)

// FiniteField returns the prime field GF(p). Every nonzero element is a
// unit, so MaybeDiv only fails when the divisor is zero. p is assumed
// prime; the ring does not verify it (a composite modulus is a
// programmer error).
//
// Division is exact multiplicative-inverse division, the inverse taken
// with math/big's ModInverse rather than a precomputed log/antilog
// table, since p is arbitrary here instead of fixed at a byte-sized
// field.
func FiniteField(p int64) Ring {
	return fieldRing{p: big.NewInt(p)}
}

type fieldRing struct {
	p *big.Int
}

func fOf(v Value) int64 { return v.(int64) }

// NewField builds a GF(p) coeff.Value, reducing n modulo p.
func NewField(n, p int64) Value {
	return fieldRing{p: big.NewInt(p)}.reduce(n)
}

func (r fieldRing) reduce(n int64) int64 {
	m := new(big.Int).Mod(big.NewInt(n), r.p)
	return m.Int64()
}

func (r fieldRing) Zero() Value { return int64(0) }
func (r fieldRing) One() Value  { return int64(1) }

func (r fieldRing) IsZero(v Value) bool { return fOf(v) == 0 }

func (r fieldRing) Equal(a, b Value) bool { return fOf(a) == fOf(b) }

func (r fieldRing) Add(a, b Value) Value { return r.reduce(fOf(a) + fOf(b)) }
func (r fieldRing) Sub(a, b Value) Value { return r.reduce(fOf(a) - fOf(b)) }
func (r fieldRing) Neg(a Value) Value    { return r.reduce(-fOf(a)) }
func (r fieldRing) Mul(a, b Value) Value { return r.reduce(fOf(a) * fOf(b)) }

func (r fieldRing) MaybeDiv(a, b Value) (Value, bool) {
	if fOf(b) == 0 {
		return nil, false
	}
	inv := new(big.Int).ModInverse(big.NewInt(fOf(b)), r.p)
	if inv == nil {
		return nil, false
	}
	prod := new(big.Int).Mul(big.NewInt(fOf(a)), inv)
	return new(big.Int).Mod(prod, r.p).Int64(), true
}

func (r fieldRing) String(v Value) string { return fmt.Sprintf("%d", fOf(v)) }
