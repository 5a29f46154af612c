// Package syzygy computes a spanning set of syzygies of a completed
// Gröbner basis: vectors (s_1,...,s_n) of polynomials with
// Σ s_i·G[i] = 0, one produced per row-matching pair of basis elements
// and reduced against the running set already found.
package syzygy
