// Package pairqueue implements the Buchberger engine's S-polynomial
// scheduler: a container/heap min-priority queue of index pairs keyed
// by lcm-degree, plus the membership set and alive-filtering Pop that
// the product criterion and stable-index tombstoning need.
package pairqueue
