// Package modvec implements Element: a fixed-length vector of
// poly.Polynomial forming one element of a free module over a
// polynomial ring. A plain polynomial is the k=1 case (FromPolynomial):
// rather than a generic interface parameterised over two concrete
// shapes, the module element type generalizes the polynomial case
// outright, so the reducer and Buchberger engine (packages reduce and
// groebner) are written once, against Element, with no loss of
// generality for the k=1 (ideal) case.
package modvec
