// Package monomial provides the exponent-vector representation of
// monomials in a fixed-arity polynomial ring, together with the total
// orders (degree-reverse-lex, lex) that the reduction and Buchberger
// engines are parameterised on.
//
// A Monomial is a plain []int32 of length n (the ring's variable count).
// Every operation that combines two monomials (Mul, Divides, MaybeDiv,
// LCM) assumes they share the same arity; mismatched arities panic, since
// that is a programmer error (wrong ring), not a recoverable condition.
package monomial
