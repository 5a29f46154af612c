// Package groebner is a computer-algebra library for computing Gröbner
// bases of multivariate polynomial ideals and submodules over a
// commutative coefficient ring.
//
// Subpackages, one per concern:
//
//	monomial/ — exponent vectors, monomial orders (degrevlex, lex)
//	coeff/    — coefficient ring contract and concrete rings
//	poly/     — terms, polynomials, ring descriptors
//	modvec/   — fixed-length module elements over a polynomial ring
//	reduce/   — multivariate division: leaddivrem, divrem, rem
//	pairqueue/ — S-polynomial pair scheduler
//	groebner/ — the Buchberger engine: sequential and parallel backends
//	coeffmat/ — dense matrices of polynomial entries (transformation,
//	            syzygy relations)
//	syzygy/   — syzygy module of a completed Gröbner basis
//
// Quick example:
//
//	r := poly.NewRing(2, monomial.DegRevLex, coeff.Rational)
//	x2my := modvec.FromPolynomial(poly.New(r,
//		poly.Term{Mon: monomial.Monomial{2, 0}, Coe: coeff.NewRat(1, 1)},
//		poly.Term{Mon: monomial.Monomial{0, 1}, Coe: coeff.NewRat(-1, 1)},
//	))
//	basis, err := groebner.Basis([]modvec.Element{x2my})
package groebner
