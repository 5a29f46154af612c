package pairqueue

import "container/heap"

// Pair is an unordered pair of stable basis indices, always stored
// canonically with I < J, keyed by the lcm-degree of the two elements'
// leading terms at the time of insertion.
type Pair struct {
	I, J int
	Key  int
}

func canon(i, j int) (int, int) {
	if i < j {
		return i, j
	}
	return j, i
}

// Queue is a min-priority queue of Pair by Key, with a companion set
// for O(1) membership queries (the product criterion's "is (i,l) or
// (j,l) already enqueued" check). It is not safe for concurrent use;
// the parallel Buchberger backend guards it with its own mutex.
type Queue struct {
	h    pairHeap
	seen map[[2]int]struct{}
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{seen: make(map[[2]int]struct{})}
	heap.Init(&q.h)
	return q
}

// Len reports the number of pairs currently queued (including any not
// yet popped that reference a now-dead index).
func (q *Queue) Len() int {
	return q.h.Len()
}

// Contains reports whether (i,j) — in either order — is currently
// enqueued.
func (q *Queue) Contains(i, j int) bool {
	a, b := canon(i, j)
	_, ok := q.seen[[2]int{a, b}]
	return ok
}

// Push inserts (i,j) with priority key. Pushing a pair already present
// is a no-op, so callers may push without checking Contains first.
func (q *Queue) Push(i, j, key int) {
	a, b := canon(i, j)
	k := [2]int{a, b}
	if _, ok := q.seen[k]; ok {
		return
	}
	q.seen[k] = struct{}{}
	heap.Push(&q.h, Pair{I: a, J: b, Key: key})
}

// Pop removes and returns the lowest-key pair whose both components are
// alive according to alive, discarding any stale dead pairs it
// encounters along the way. It returns (Pair{}, false) once the queue
// is exhausted without finding a live pair.
func (q *Queue) Pop(alive func(stableIdx int) bool) (Pair, bool) {
	for q.h.Len() > 0 {
		p := heap.Pop(&q.h).(Pair)
		delete(q.seen, [2]int{p.I, p.J})
		if alive(p.I) && alive(p.J) {
			return p, true
		}
	}
	return Pair{}, false
}

// pairHeap implements container/heap.Interface over []Pair.
type pairHeap []Pair

func (h pairHeap) Len() int            { return len(h) }
func (h pairHeap) Less(i, j int) bool  { return h[i].Key < h[j].Key }
func (h pairHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(Pair)) }
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
