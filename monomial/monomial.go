package monomial

import "fmt"

// Monomial is an exponent vector over n variables; Monomial[i] is the
// exponent of variable i. All monomials passed to a single operation must
// share the same length.
type Monomial []int32

// New allocates a zero monomial (the ring's multiplicative identity) of
// arity n.
func New(n int) Monomial {
	return make(Monomial, n)
}

// Arity returns the number of variables m is defined over.
func (m Monomial) Arity() int {
	return len(m)
}

func checkArity(a, b Monomial) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("monomial: arity mismatch (%d vs %d)", len(a), len(b)))
	}
}

// Equal reports whether a and b have identical exponents.
func (a Monomial) Equal(b Monomial) bool {
	checkArity(a, b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of m.
func (m Monomial) Clone() Monomial {
	out := make(Monomial, len(m))
	copy(out, m)
	return out
}

// IsOne reports whether m is the multiplicative identity (all exponents 0).
func (m Monomial) IsOne() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	return true
}

// Mul returns the pointwise sum of exponents, i.e. a*b.
func (a Monomial) Mul(b Monomial) Monomial {
	checkArity(a, b)
	out := make(Monomial, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Divides reports whether a | b, i.e. every exponent of a is ≤ the
// corresponding exponent of b.
func (a Monomial) Divides(b Monomial) bool {
	checkArity(a, b)
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// MaybeDiv returns b/a and true when a divides b exactly, else the zero
// value and false. The quotient is never allocated on the failure path.
func (a Monomial) MaybeDiv(b Monomial) (Monomial, bool) {
	checkArity(a, b)
	for i := range a {
		if a[i] > b[i] {
			return nil, false
		}
	}
	out := make(Monomial, len(a))
	for i := range a {
		out[i] = b[i] - a[i]
	}
	return out, true
}

// TotalDegree returns the sum of all exponents.
func (m Monomial) TotalDegree() int {
	var d int
	for _, e := range m {
		d += int(e)
	}
	return d
}

// LCM returns the least common multiple of a and b: the pointwise max of
// exponents.
func (a Monomial) LCM(b Monomial) Monomial {
	checkArity(a, b)
	out := make(Monomial, len(a))
	for i := range a {
		if a[i] >= b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// LCMMultipliers returns (l/a, l/b) where l = LCM(a,b) — the pair of
// monomials that, multiplied into a and b respectively, both produce l.
func LCMMultipliers(a, b Monomial) (Monomial, Monomial) {
	checkArity(a, b)
	l := a.LCM(b)
	ma, _ := a.MaybeDiv(l)
	mb, _ := b.MaybeDiv(l)
	return ma, mb
}

// LCMDegree returns TotalDegree(LCM(a,b)) without allocating the lcm
// itself; used as the pair queue's priority key.
func LCMDegree(a, b Monomial) int {
	checkArity(a, b)
	var d int
	for i := range a {
		if a[i] >= b[i] {
			d += int(a[i])
		} else {
			d += int(b[i])
		}
	}
	return d
}

// String renders m as x0^e0*x1^e1*... omitting zero exponents, or "1" if
// m is the identity. Variable names are opaque to this package (naming
// is an external collaborator's concern); this is a debugging aid, not
// the pretty-printer.
func (m Monomial) String() string {
	if m.IsOne() {
		return "1"
	}
	s := ""
	for i, e := range m {
		if e == 0 {
			continue
		}
		if s != "" {
			s += "*"
		}
		if e == 1 {
			s += fmt.Sprintf("x%d", i)
		} else {
			s += fmt.Sprintf("x%d^%d", i, e)
		}
	}
	return s
}
