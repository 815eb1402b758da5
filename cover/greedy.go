package cover

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/viant/coverdesign/index"
)

// selector holds the mutable state of one greedy run over a built index.
type selector struct {
	idx       index.Index
	uncovered *bitset.BitSet
	count     []int
}

func newSelector(idx index.Index) *selector {
	sel := &selector{
		idx:       idx,
		uncovered: bitset.New(uint(idx.Subsets())),
		count:     make([]int, idx.Combos()),
	}
	for u := 0; u < idx.Subsets(); u++ {
		sel.uncovered.Set(uint(u))
	}
	for c := range sel.count {
		sel.count[c] = len(idx.CoveredBy(c))
	}
	return sel
}

// best returns the first combination holding the maximum count. Later
// combinations with an equal count never displace an earlier one.
func (s *selector) best() (int, int) {
	bestIdx, bestCount := -1, 0
	for c, n := range s.count {
		if n > bestCount {
			bestIdx, bestCount = c, n
		}
	}
	return bestIdx, bestCount
}

// commit marks every subset covered by c as covered and decrements the count
// of each combination that covered it. It returns the number of subsets
// newly covered.
func (s *selector) commit(c int) int {
	removed := 0
	for _, u := range s.idx.CoveredBy(c) {
		if !s.uncovered.Test(uint(u)) {
			continue
		}
		for _, other := range s.idx.Covering(u) {
			s.count[other]--
		}
		s.uncovered.Clear(uint(u))
		removed++
	}
	s.count[c] = 0
	return removed
}

// run executes the greedy loop and returns the chosen combination indices in
// selection order.
func (s *selector) run(onSelect func(c, gained, remaining int)) []int {
	var chosen []int
	for s.uncovered.Any() {
		c, n := s.best()
		if n == 0 {
			break
		}
		gained := s.commit(c)
		chosen = append(chosen, c)
		if onSelect != nil {
			onSelect(c, gained, int(s.uncovered.Count()))
		}
	}
	return chosen
}

// remaining lists uncovered subset indices in ascending order.
func (s *selector) remaining() []int {
	out := make([]int, 0, s.uncovered.Count())
	for u, ok := s.uncovered.NextSet(0); ok; u, ok = s.uncovered.NextSet(u + 1) {
		out = append(out, int(u))
	}
	return out
}
