package groebner

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/pairqueue"
	"github.com/polyra/groebner/poly"
	"golang.org/x/sync/errgroup"
)

// runParallel is the worker-pool Buchberger driver:
// Options.Threads workers draw pairs from the shared, mutex-guarded
// pair queue and reduce S-polynomials against lock-free snapshots of
// the shared basis, rechecking against whatever was appended by other
// workers meanwhile before publishing.
func runParallel(gens []modvec.Element, ring *poly.RingDescriptor, o Options) ([]modvec.Element, []row, error) {
	s := newBasisState(ring.Order, o.WithTransformation)
	for i, e := range gens {
		var tr row
		if o.WithTransformation {
			tr = unitRow(ring, i)
		}
		s.insert(e, tr)
	}

	// Inter-reducing the inputs happens before any worker starts, so it
	// runs single-threaded against s directly — no different from the
	// sequential backend's step 2.
	interReduceInputs(s)
	seedPairs(s, o.MaxDegree)

	g, ctx := errgroup.WithContext(o.Ctx)
	var inflight int32
	for w := 0; w < o.Threads; w++ {
		g.Go(func() error { return parallelWorker(ctx, s, o, &inflight) })
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	elems, rows := s.finalize()
	return elems, rows, nil
}

// parallelWorker repeats: cancellation check, pop, product criterion,
// snapshot/reduce/re-check, publish, enqueue — until the pair queue is
// exhausted and no sibling worker has a pair in flight. The inflight
// counter is what lets a worker distinguish "queue momentarily empty
// because a sibling is about to push more pairs" from "truly done".
func parallelWorker(ctx context.Context, s *basisState, o Options, inflight *int32) error {
	loops := 0
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("groebner: %w", ErrCancelled)
		default:
		}

		pair, ok := s.popPair(s.alive)
		if !ok {
			if atomic.LoadInt32(inflight) == 0 {
				return nil
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("groebner: %w", ErrCancelled)
			case <-time.After(time.Millisecond):
			}
			continue
		}

		loops++
		atomic.AddInt32(inflight, 1)
		processPair(s, o, pair, loops)
		atomic.AddInt32(inflight, -1)
	}
}

func processPair(s *basisState, o Options, pair pairqueue.Pair, loops int) {
	a, okA := s.get(pair.I)
	b, okB := s.get(pair.J)
	if !okA || !okB {
		return
	}
	if s.productCriterion(pair.I, pair.J, a, b) {
		return
	}

	trA, trB := s.transformRow(pair.I), s.transformRow(pair.J)
	S, trS := sPolynomial(a, b, trA, trB)

	redS, redTrS := reduceAgainstSnapshotLoop(s, S, trS)
	if redS.IsZero() {
		return
	}

	idx := s.insert(redS, redTrS)

	for _, other := range s.liveIndices() {
		if other == idx {
			continue
		}
		pushPairIfRowMatched(s, idx, other, o.MaxDegree, s.pushPair)
	}

	if o.ProgressFunc != nil && loops%1000 == 0 {
		s.pairsMu.Lock()
		queueLen := s.pairs.Len()
		s.pairsMu.Unlock()
		s.logMu.Lock()
		o.ProgressFunc(loops, s.size(), queueLen)
		s.logMu.Unlock()
	}
}

// reduceAgainstSnapshotLoop reduces against a lock-free clone, then
// checks whether anything appended since the snapshot has a leading
// monomial dividing the reduced element's — if so, loop and reduce
// again against a fresh snapshot; otherwise the result is ready to
// publish.
func reduceAgainstSnapshotLoop(s *basisState, S modvec.Element, trS row) (modvec.Element, row) {
	redS, redTr := S, trS
	for {
		elems, rows := s.allRows()
		snapshotLen := len(elems)
		redS, redTr, _ = reduceWithTransform(redS, redTr, elems, rows)
		if redS.IsZero() {
			return redS, redTr
		}

		tail := s.tailSince(snapshotLen)
		if len(tail) == 0 || !anyLeadDivides(redS, tail) {
			return redS, redTr
		}
		// A sibling appended a divisor mid-flight; loop to take a fresh
		// snapshot and fully reduce again.
	}
}

// anyLeadDivides reports whether any element of others shares e's
// leading row and has a leading monomial dividing e's.
func anyLeadDivides(e modvec.Element, others []modvec.Element) bool {
	row := e.LeadingRow()
	if row < 0 {
		return false
	}
	lm := e.Rows[row].LeadingMonomial()
	for _, g := range others {
		if g.IsZero() || g.LeadingRow() != row {
			continue
		}
		if g.Rows[row].LeadingMonomial().Divides(lm) {
			return true
		}
	}
	return false
}
