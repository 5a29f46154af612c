package monomial

import "sort"

// Order is a total order on monomials compatible with multiplication
// (a < b implies a*c < b*c for every c) and with 1 as the minimum. The
// reducer and Buchberger engine are parameterised on Order and must not
// assume anything beyond these two properties.
type Order interface {
	// Less reports whether a is strictly smaller than b under the order.
	Less(a, b Monomial) bool
}

// Equal reports whether a and b compare equal under order (neither is
// less than the other).
func Equal(order Order, a, b Monomial) bool {
	return !order.Less(a, b) && !order.Less(b, a)
}

// degRevLex implements the degree-reverse-lexicographic order: compare
// total degree first, then break ties by reverse lexicographic comparison
// of exponents (the last variable to differ, smaller exponent, ranks
// higher).
type degRevLex struct{}

// DegRevLex is the degree-reverse-lex order.
var DegRevLex Order = degRevLex{}

func (degRevLex) Less(a, b Monomial) bool {
	checkArity(a, b)
	da, db := a.TotalDegree(), b.TotalDegree()
	if da != db {
		return da < db
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			// Reverse lex: the monomial with the *larger* exponent in the
			// last differing variable ranks lower.
			return a[i] > b[i]
		}
	}
	return false
}

// lex implements the pure lexicographic order: the first variable to
// differ decides, larger exponent ranks higher.
type lex struct{}

// Lex is the lexicographic order.
var Lex Order = lex{}

func (lex) Less(a, b Monomial) bool {
	checkArity(a, b)
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// degLex implements the degree-lexicographic order: total degree first,
// then lex.
type degLex struct{}

// DegLex is the degree-lexicographic order.
var DegLex Order = degLex{}

func (degLex) Less(a, b Monomial) bool {
	checkArity(a, b)
	da, db := a.TotalDegree(), b.TotalDegree()
	if da != db {
		return da < db
	}
	return Lex.Less(a, b)
}

// SortReduced sorts ms by order, descending (greatest first): a
// "sort_reduced" utility in place of a final sort baked into the
// engine itself. groebner.Basis leaves basis ordering unspecified, and
// callers that want a canonical order call this explicitly.
func SortReduced(ms []Monomial, order Order) {
	sort.SliceStable(ms, func(i, j int) bool {
		return order.Less(ms[j], ms[i])
	})
}
