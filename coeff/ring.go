package coeff

// Value is an opaque coefficient handle. Its concrete type is owned by
// the Ring that produced it; callers must never compare or mutate a
// Value except through its Ring.
type Value interface{}

// Ring is a commutative ring with exact zero-testing and exact division.
// All instantiations supplied by this package (and any caller-supplied
// one) must satisfy the ring axioms; the engine assumes but does not
// verify them.
type Ring interface {
	// Zero returns the additive identity.
	Zero() Value
	// One returns the multiplicative identity.
	One() Value
	// IsZero reports whether v is the additive identity.
	IsZero(v Value) bool
	// Equal reports whether a and b denote the same ring element.
	Equal(a, b Value) bool
	// Add returns a+b.
	Add(a, b Value) Value
	// Sub returns a-b.
	Sub(a, b Value) Value
	// Neg returns -a.
	Neg(a Value) Value
	// Mul returns a*b.
	Mul(a, b Value) Value
	// MaybeDiv returns (a/b, true) when b divides a exactly in this ring,
	// else (nil, false). Never panics on a non-exact division.
	MaybeDiv(a, b Value) (Value, bool)
	// String renders v for diagnostics; not part of the algebraic
	// contract.
	String(v Value) string
}
