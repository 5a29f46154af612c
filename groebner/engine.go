package groebner

import (
	"fmt"

	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
	"github.com/polyra/groebner/poly"
)

// Basis computes a Gröbner basis of the ideal/submodule generated by
// gens.
func Basis(gens []modvec.Element, opts ...Option) ([]modvec.Element, error) {
	result, _, err := run(gens, opts)
	return result, err
}

// Transformation computes a Gröbner basis together with the sparse
// transformation matrix satisfying basis[i] = Σ_j matrix[i][j]*gens[j].
func Transformation(gens []modvec.Element, opts ...Option) ([]modvec.Element, []map[int]poly.Polynomial, error) {
	result, rows, err := run(gens, append(opts, WithTransformation(true)))
	if err != nil {
		return nil, nil, err
	}
	matrix := make([]map[int]poly.Polynomial, len(rows))
	for i, r := range rows {
		matrix[i] = map[int]poly.Polynomial(r)
	}
	return result, matrix, nil
}

func run(gens []modvec.Element, opts []Option) ([]modvec.Element, []row, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	survivors, ring, err := sanitizeInputs(gens)
	if err != nil {
		return nil, nil, err
	}
	if len(survivors) == 0 {
		// spec.md §7: EmptyInput is not an error when a transformation was
		// not requested — Basis(nil) and Basis(allZeroGens) return an empty
		// basis. Transformation (or Basis with WithTransformation(true))
		// has no input row to anchor a transformation matrix on, so it
		// fails instead.
		if o.WithTransformation {
			return nil, nil, ErrEmptyInput
		}
		return nil, nil, nil
	}
	// With a transformation, zero generators stay in place so that input
	// position j is matrix column j; interReduceInputs removes them before
	// any pair is formed.
	inputs := survivors
	if o.WithTransformation {
		inputs = gens
	}
	if o.Backend == Parallel {
		return runParallel(inputs, ring, o)
	}
	return runSequential(inputs, ring, o)
}

// sanitizeInputs drops zero generators and checks that every remaining
// generator's rings are mutually Compatible (simplified: this
// implementation requires callers to already share one
// poly.RingDescriptor rather than performing generic ring coercion —
// see DESIGN.md). It does not itself judge emptiness: whether a
// wholly-zero/empty input is an error depends on whether a
// transformation was requested, which run decides.
func sanitizeInputs(gens []modvec.Element) ([]modvec.Element, *poly.RingDescriptor, error) {
	var ring *poly.RingDescriptor
	survivors := make([]modvec.Element, 0, len(gens))
	for _, e := range gens {
		if e.IsZero() {
			continue
		}
		for _, r := range e.Rows {
			if r.IsZero() || r.Ring == nil {
				continue
			}
			if ring == nil {
				ring = r.Ring
			} else if !ring.Compatible(r.Ring) {
				return nil, nil, fmt.Errorf("groebner: %w", ErrIncompatibleRings)
			}
		}
		survivors = append(survivors, e)
	}
	return survivors, ring, nil
}

func runSequential(gens []modvec.Element, ring *poly.RingDescriptor, o Options) ([]modvec.Element, []row, error) {
	s := newBasisState(ring.Order, o.WithTransformation)
	for i, e := range gens {
		var tr row
		if o.WithTransformation {
			tr = unitRow(ring, i)
		}
		s.insert(e, tr)
	}

	interReduceInputs(s)
	seedPairs(s, o.MaxDegree)

	loops := 0
	for {
		select {
		case <-o.Ctx.Done():
			return nil, nil, fmt.Errorf("groebner: %w", ErrCancelled)
		default:
		}

		pair, ok := s.pairs.Pop(s.alive)
		if !ok {
			break
		}
		loops++
		if o.MaxDegree != nil && pair.Key > *o.MaxDegree {
			continue
		}

		a, okA := s.get(pair.I)
		b, okB := s.get(pair.J)
		if !okA || !okB {
			continue
		}
		if s.productCriterion(pair.I, pair.J, a, b) {
			continue
		}

		trA, trB := s.transformRow(pair.I), s.transformRow(pair.J)
		S, trS := sPolynomial(a, b, trA, trB)

		basis, basisRows := s.allRows()
		redS, redTrS, _ := reduceWithTransform(S, trS, basis, basisRows)
		if redS.IsZero() {
			continue
		}

		newIdx := s.insert(redS, redTrS)
		interReduceRestAgainstNew(s, newIdx)
		enqueueNewPairs(s, newIdx, o.MaxDegree)

		if o.ProgressFunc != nil && loops%1000 == 0 {
			o.ProgressFunc(loops, s.size(), s.pairs.Len())
		}
	}

	elems, rows := s.finalize()
	return elems, rows, nil
}

// interReduceInputs reduces every initial generator, lead-then-full,
// against the rest; zero results are removed.
func interReduceInputs(s *basisState) {
	for _, idx := range s.liveIndices() {
		e, ok := s.get(idx)
		if !ok {
			continue
		}
		tr := s.transformRow(idx)
		rest, restRows, _ := s.restExcluding(idx)
		newE, newTr, changed := reduceWithTransform(e, tr, rest, restRows)
		if newE.IsZero() {
			s.remove(idx)
		} else if changed {
			s.replace(idx, newE, newTr)
		}
	}
}

// interReduceRestAgainstNew tries every other live element against the
// singleton hint {new} first; if that changes it, it is further fully
// reduced against the whole basis.
func interReduceRestAgainstNew(s *basisState, newIdx int) {
	newElem, ok := s.get(newIdx)
	if !ok {
		return
	}
	newRow := s.transformRow(newIdx)

	for _, idx := range s.liveIndices() {
		if idx == newIdx {
			continue
		}
		e, ok := s.get(idx)
		if !ok {
			continue
		}
		tr := s.transformRow(idx)

		hinted, hintedTr, changed := reduceWithTransform(e, tr, []modvec.Element{newElem}, []row{newRow})
		if !changed {
			continue
		}
		if hinted.IsZero() {
			s.remove(idx)
			continue
		}

		rest, restRows, _ := s.restExcluding(idx)
		full, fullTr, _ := reduceWithTransform(hinted, hintedTr, rest, restRows)
		if full.IsZero() {
			s.remove(idx)
		} else {
			s.replace(idx, full, fullTr)
		}
	}
}

// seedPairs enqueues every row-matching pair among the currently live
// elements.
func seedPairs(s *basisState, maxDegree *int) {
	idxs := s.liveIndices()
	for a := 0; a < len(idxs); a++ {
		for b := a + 1; b < len(idxs); b++ {
			pushPairIfRowMatched(s, idxs[a], idxs[b], maxDegree, s.pairs.Push)
		}
	}
}

// enqueueNewPairs enqueues a pair between newIdx and every other
// currently live element, subject to row-matching.
func enqueueNewPairs(s *basisState, newIdx int, maxDegree *int) {
	for _, idx := range s.liveIndices() {
		if idx == newIdx {
			continue
		}
		pushPairIfRowMatched(s, newIdx, idx, maxDegree, s.pairs.Push)
	}
}

func pushPairIfRowMatched(s *basisState, i, j int, maxDegree *int, push func(i, j, key int)) {
	ei, ok := s.get(i)
	if !ok {
		return
	}
	ej, ok := s.get(j)
	if !ok {
		return
	}
	row := ei.LeadingRow()
	if row < 0 || row != ej.LeadingRow() {
		return
	}
	li := ei.Rows[row].LeadingMonomial()
	lj := ej.Rows[row].LeadingMonomial()
	key := monomial.LCMDegree(li, lj)
	if maxDegree != nil && key > *maxDegree {
		return
	}
	push(i, j, key)
}
