package poly

import (
	"sort"
	"strings"

	"github.com/polyra/groebner/monomial"
)

// Polynomial is a finite, order-sorted (descending), distinct-monomial,
// zero-free sequence of terms over Ring.
type Polynomial struct {
	Ring  *RingDescriptor
	Terms []Term
}

// Zero returns the zero polynomial (empty term sequence) over r.
func Zero(r *RingDescriptor) Polynomial {
	return Polynomial{Ring: r}
}

// New builds a canonical Polynomial from an arbitrary (unsorted,
// possibly duplicate-monomial, possibly zero-coefficient) term list:
// terms are sorted descending by r.Order, duplicate monomials are
// combined by adding coefficients, and zero-coefficient terms are
// dropped. This is the single place invariants (i)-(iv) are enforced.
func New(r *RingDescriptor, terms ...Term) Polynomial {
	if len(terms) == 0 {
		return Zero(r)
	}
	for _, t := range terms {
		r.checkArity(t.Mon.Arity())
	}

	cp := make([]Term, len(terms))
	copy(cp, terms)
	sort.SliceStable(cp, func(i, j int) bool {
		return r.Order.Less(cp[j].Mon, cp[i].Mon)
	})

	out := make([]Term, 0, len(cp))
	for _, t := range cp {
		if n := len(out); n > 0 && out[n-1].Mon.Equal(t.Mon) {
			out[n-1] = Term{Mon: t.Mon, Coe: r.Coeff.Add(out[n-1].Coe, t.Coe)}
			continue
		}
		out = append(out, t)
	}

	final := out[:0]
	for _, t := range out {
		if !r.Coeff.IsZero(t.Coe) {
			final = append(final, t)
		}
	}
	return Polynomial{Ring: r, Terms: final}
}

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool {
	return len(p.Terms) == 0
}

// LeadingTerm returns the first (greatest) term and true, or the zero
// Term and false when p is zero.
func (p Polynomial) LeadingTerm() (Term, bool) {
	if p.IsZero() {
		return Term{}, false
	}
	return p.Terms[0], true
}

// LeadingMonomial returns the leading term's monomial, or nil when p is
// zero.
func (p Polynomial) LeadingMonomial() monomial.Monomial {
	if p.IsZero() {
		return nil
	}
	return p.Terms[0].Mon
}

// Clone returns a deep, independent copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = Term{Mon: t.Mon.Clone(), Coe: t.Coe}
	}
	return Polynomial{Ring: p.Ring, Terms: out}
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return New(p.Ring, append(append([]Term{}, p.Terms...), q.Terms...)...)
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	cr := p.Ring.Coeff
	neg := make([]Term, len(q.Terms))
	for i, t := range q.Terms {
		neg[i] = t.Neg(cr)
	}
	return New(p.Ring, append(append([]Term{}, p.Terms...), neg...)...)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	cr := p.Ring.Coeff
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = t.Neg(cr)
	}
	return Polynomial{Ring: p.Ring, Terms: out}
}

// MulTerm returns t*p, multiplying every term of p by t.
func (p Polynomial) MulTerm(t Term) Polynomial {
	cr := p.Ring.Coeff
	out := make([]Term, len(p.Terms))
	for i, pt := range p.Terms {
		out[i] = pt.Mul(t, cr)
	}
	// Multiplying by a fixed nonzero term preserves monomial order and
	// distinctness, so no re-canonicalisation pass is needed unless t
	// itself is the zero coefficient.
	if cr.IsZero(t.Coe) {
		return Zero(p.Ring)
	}
	return Polynomial{Ring: p.Ring, Terms: out}
}

// Equal reports whether p and q have identical term sequences.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	cr := p.Ring.Coeff
	for i := range p.Terms {
		if !p.Terms[i].Mon.Equal(q.Terms[i].Mon) || !cr.Equal(p.Terms[i].Coe, q.Terms[i].Coe) {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String(p.Ring.Coeff)
	}
	return strings.Join(parts, " + ")
}
