// Package coeffmat provides a dense, row-major matrix of
// poly.Polynomial entries — the same flat-slice layout as a plain
// numeric dense matrix, with poly.Zero(ring) standing in for 0.0 —
// sized for the polynomial-entry matrices the Buchberger engine and
// syzygy computer produce: the syzygy relation matrix (one row per
// syzygy, one column per basis element) and, on request, a dense
// rendering of a sparse transformation row set.
package coeffmat
