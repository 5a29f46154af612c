// Package reduce implements multivariate division: LeadDivRem and
// DivRem against a single divisor, and the composite Rem/DivRemVec
// against a whole basis, with the greedy "restart at index 0 on every
// successful division" cursor behaviour and the sorted-leading-monomial
// fast divisor lookup of BasisView.
//
// A reference implementation of this contract used object identity as
// a "nothing changed" sentinel (divrem returns the same f when no term
// divides). Go value types make that unavailable, so every division
// here returns an explicit Status — Unchanged, Reduced, or Zero —
// callers branch on Status exactly where that design branched on
// identity.
package reduce
