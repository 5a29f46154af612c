// Package poly implements Term and Polynomial: a nonzero-coefficient,
// distinct-monomial, order-sorted term sequence over a fixed ring
// descriptor (arity, monomial order, coefficient ring).
//
// Every constructor and arithmetic method returns a fresh, canonical
// Polynomial — sorted descending under the ring's order, with duplicate
// monomials combined and zero-coefficient terms dropped — so invariants
// (i)-(iv) of the polynomial data model hold by construction, not by
// caller discipline.
package poly
