package reduce

import (
	"sort"

	"github.com/polyra/groebner/modvec"
	"github.com/polyra/groebner/monomial"
)

// BasisView is a fast divisor-lookup structure: a snapshot of a basis
// kept sorted by leading monomial within each leading row, so that
// "does some element's leading monomial divide m" can be answered by
// enumerating the divisors of m and binary-searching each one, rather
// than scanning every element.
//
// A flat array sorted purely by leading monomial would let elements
// from unrelated rows collide on equal monomials; grouping by row
// first keeps the binary search exact for module elements without
// changing its asymptotics.
type BasisView struct {
	order monomial.Order
	byRow map[int][]rowEntry
}

type rowEntry struct {
	mon monomial.Monomial
	idx int
}

// NewBasisView builds a BasisView over elements, keyed by their
// position in that slice. Zero elements are skipped; callers rebuild
// the view whenever the underlying basis gains or loses elements.
func NewBasisView(order monomial.Order, elements []modvec.Element) *BasisView {
	v := &BasisView{order: order, byRow: make(map[int][]rowEntry)}
	for i, e := range elements {
		row := e.LeadingRow()
		if row < 0 {
			continue
		}
		v.byRow[row] = append(v.byRow[row], rowEntry{mon: e.Rows[row].LeadingMonomial(), idx: i})
	}
	for row := range v.byRow {
		entries := v.byRow[row]
		sort.Slice(entries, func(i, j int) bool {
			return order.Less(entries[i].mon, entries[j].mon)
		})
		v.byRow[row] = entries
	}
	return v
}

// FindDivisor returns the index (into the slice NewBasisView was built
// from) of some element whose leading row is row and whose leading
// monomial divides mon exactly, and true — or -1 and false if none
// does. Candidates are enumerated over the finite product of
// 0..exponent for every variable with a nonzero exponent in mon, in no
// particular order, stopping at the first hit.
func (v *BasisView) FindDivisor(row int, mon monomial.Monomial) (int, bool) {
	entries := v.byRow[row]
	if len(entries) == 0 {
		return -1, false
	}
	found := -1
	enumerateDivisors(mon, func(d monomial.Monomial) bool {
		if i := search(v.order, entries, d); i >= 0 {
			found = entries[i].idx
			return true
		}
		return false
	})
	return found, found >= 0
}

// search returns the index in entries (sorted ascending by order) whose
// monomial equals d exactly, or -1.
func search(order monomial.Order, entries []rowEntry, d monomial.Monomial) int {
	lo := sort.Search(len(entries), func(i int) bool {
		return !order.Less(entries[i].mon, d)
	})
	if lo < len(entries) && monomial.Equal(order, entries[lo].mon, d) {
		return lo
	}
	return -1
}

// enumerateDivisors calls visit on every divisor of mon — every
// monomial d with d[i] in 0..mon[i] for each i — stopping as soon as
// visit returns true. The identity divisor (all zeros) and mon itself
// are both included.
func enumerateDivisors(mon monomial.Monomial, visit func(d monomial.Monomial) bool) {
	var varying []int
	for i, e := range mon {
		if e > 0 {
			varying = append(varying, i)
		}
	}
	counters := make([]int32, len(varying))
	cand := monomial.New(mon.Arity())
	for {
		for k, pos := range varying {
			cand[pos] = counters[k]
		}
		if visit(cand) {
			return
		}
		k := 0
		for k < len(varying) {
			counters[k]++
			if counters[k] <= mon[varying[k]] {
				break
			}
			counters[k] = 0
			k++
		}
		if k == len(varying) {
			return
		}
	}
}
