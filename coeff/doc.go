// Package coeff defines the coefficient-ring contract the reducer and
// Buchberger engine are built against, plus a handful of concrete exact
// rings (ℚ, ℤ, ℤ[i], GF(p)) used throughout the test suite.
//
// The core never assumes a specific numeric representation: it only
// calls Ring methods on opaque Value handles, so a caller may plug in any
// ring with exact zero-testing and exact division. Division is expressed
// as MaybeDiv, returning (quotient, ok) rather than raising, so the
// "not exactly divisible" path inside the reducer is an ordinary branch.
package coeff
