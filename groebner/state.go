package groebner

import (
	"sync"

	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/pairqueue"
)

// basisState is the owned, mutable state of a single Basis/Transformation
// call: the growing result sequence, the optional transformation rows,
// and the stable-index bookkeeping that lets elements be tombstoned on
// inter-reduction without invalidating indices held by the pair queue.
//
// mu guards everything below it for the Parallel backend; the
// Sequential backend never contends on it but still locks
// unconditionally, since every accessor is shared between both
// backends.
//
// Lock ordering: any caller that needs both mu and pairsMu — currently
// only productCriterion, which must judge "already enqueued" against a
// basis snapshot and a queue snapshot from the same instant — acquires
// mu before pairsMu, and releases in the reverse order. Every other
// accessor takes at most one of the two, so this is the only ordering
// constraint in the package.
type basisState struct {
	mu sync.RWMutex

	order monomial.Order

	elements map[int]modvec.Element // stable index -> element, alive only
	live     []int                  // dense, insertion-ordered alive stable indices
	next     int

	transformation     map[int]row // stable index -> row, nil unless requested
	withTransformation bool

	pairs   *pairqueue.Queue
	pairsMu sync.Mutex // the pair queue's own writer lock, independent of mu

	logMu sync.Mutex // the log's own mutex, independent of mu
}

func newBasisState(order monomial.Order, withTransformation bool) *basisState {
	s := &basisState{
		order:              order,
		elements:           make(map[int]modvec.Element),
		transformation:     nil,
		withTransformation: withTransformation,
		pairs:              pairqueue.New(),
	}
	if withTransformation {
		s.transformation = make(map[int]row)
	}
	return s
}

// alive reports whether stableIdx currently identifies a live element.
// Satisfies the pairqueue.Queue.Pop alive-predicate signature.
func (s *basisState) alive(stableIdx int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.elements[stableIdx]
	return ok
}

// insert adds e as a new live element, assigns it the next stable
// index, records its transformation row when requested, and returns
// the stable index.
func (s *basisState) insert(e modvec.Element, tr row) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.next
	s.next++
	s.elements[idx] = e
	s.live = append(s.live, idx)
	if s.withTransformation {
		s.transformation[idx] = tr
	}
	return idx
}

// remove tombstones stableIdx: it is dropped from elements and
// compacted out of live. Already-dead indices are a no-op.
func (s *basisState) remove(stableIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[stableIdx]; !ok {
		return
	}
	delete(s.elements, stableIdx)
	delete(s.transformation, stableIdx)
	for i, idx := range s.live {
		if idx == stableIdx {
			s.live = append(s.live[:i], s.live[i+1:]...)
			break
		}
	}
}

// replace overwrites the element and transformation row stored at an
// already-live stableIdx, without touching its position in live or
// assigning a new index — used when inter-reduction changes an
// existing element in place.
func (s *basisState) replace(stableIdx int, e modvec.Element, tr row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[stableIdx]; !ok {
		return
	}
	s.elements[stableIdx] = e
	if s.withTransformation {
		s.transformation[stableIdx] = tr
	}
}

// get returns the element at stableIdx and whether it is alive.
func (s *basisState) get(stableIdx int) (modvec.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.elements[stableIdx]
	return e, ok
}

// transformRow returns the transformation row at stableIdx, or nil
// when transformation tracking is off.
func (s *basisState) transformRow(stableIdx int) row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.transformation == nil {
		return nil
	}
	return s.transformation[stableIdx]
}

// size returns the number of currently live elements.
func (s *basisState) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.live)
}

// liveIndices returns a copy of the currently live stable indices, safe
// to iterate over while the caller mutates the state concurrently.
func (s *basisState) liveIndices() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.live))
	copy(out, s.live)
	return out
}

// allRows returns every currently live element together with its
// transformation row (nil entries when tracking is off), in live
// order.
func (s *basisState) allRows() ([]modvec.Element, []row) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	elems := make([]modvec.Element, len(s.live))
	rows := make([]row, len(s.live))
	for i, idx := range s.live {
		elems[i] = s.elements[idx]
		if s.withTransformation {
			rows[i] = s.transformation[idx]
		}
	}
	return elems, rows
}

// restExcluding is allRows filtered to exclude skip, with the stable
// index of every returned position carried alongside for callers that
// need to translate a position back to a stable index.
func (s *basisState) restExcluding(skip int) (elems []modvec.Element, rows []row, stableOf []int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, idx := range s.live {
		if idx == skip {
			continue
		}
		elems = append(elems, s.elements[idx])
		stableOf = append(stableOf, idx)
		if s.withTransformation {
			rows = append(rows, s.transformation[idx])
		} else {
			rows = append(rows, nil)
		}
	}
	return
}

// tailSince returns every currently live element whose position in the
// insertion-ordered live slice is at or past snapshotLen — the elements
// appended by other workers since a snapshot of that length was taken.
func (s *basisState) tailSince(snapshotLen int) []modvec.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if snapshotLen >= len(s.live) {
		return nil
	}
	tail := make([]modvec.Element, 0, len(s.live)-snapshotLen)
	for _, idx := range s.live[snapshotLen:] {
		tail = append(tail, s.elements[idx])
	}
	return tail
}

// finalize returns the surviving elements and their transformation
// rows in live order — the owned, fresh result Basis/Transformation
// hand back to the caller.
func (s *basisState) finalize() ([]modvec.Element, []row) {
	return s.allRows()
}

// productCriterion reports whether pair (i,j) may be discarded because
// a third live element l, sharing the pair's leading row, divides
// their lcm while neither (i,l) nor (j,l) is currently enqueued. It
// holds mu and pairsMu together for the whole check — per spec.md §5,
// "already-enqueued" membership must be judged against the same
// basis/queue instant the liveness check used, not a basis read and a
// queue read taken at two different moments under two different locks.
func (s *basisState) productCriterion(i, j int, a, b modvec.Element) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.pairsMu.Lock()
	defer s.pairsMu.Unlock()

	row := a.LeadingRow()
	if row < 0 || row != b.LeadingRow() {
		return false
	}
	at, _ := a.Rows[row].LeadingTerm()
	bt, _ := b.Rows[row].LeadingTerm()
	l := at.Mon.LCM(bt.Mon)

	for _, k := range s.live {
		if k == i || k == j {
			continue
		}
		el, ok := s.elements[k]
		if !ok || el.LeadingRow() != row {
			continue
		}
		lmK := el.Rows[row].LeadingMonomial()
		if !lmK.Divides(l) {
			continue
		}
		if s.pairs.Contains(i, k) || s.pairs.Contains(j, k) {
			continue
		}
		return true
	}
	return false
}

// popPair and pushPair take the pair queue's own lock, independent of
// mu, used by the Parallel backend; the Sequential backend calls
// s.pairs directly since it never contends.
func (s *basisState) popPair(alive func(int) bool) (pairqueue.Pair, bool) {
	s.pairsMu.Lock()
	defer s.pairsMu.Unlock()
	return s.pairs.Pop(alive)
}

func (s *basisState) pushPair(i, j, key int) {
	s.pairsMu.Lock()
	defer s.pairsMu.Unlock()
	s.pairs.Push(i, j, key)
}
