// Package groebner implements the Buchberger engine: Basis and
// Transformation compute a Gröbner basis of a finite generating set,
// discovering S-polynomials via pairqueue, reducing them with package
// reduce, and (optionally) maintaining a sparse transformation matrix
// back to the original generators.
//
// The engine has two backends. Sequential is the straight-line,
// single-threaded driver. Parallel (WithBackend(Parallel)) runs a pool
// of workers over the same basis state guarded by a sync.RWMutex,
// using a snapshot/reread pattern: a worker reduces an S-polynomial
// against a lock-free snapshot, then re-checks it against whatever was
// appended by other workers meanwhile before publishing.
package groebner
