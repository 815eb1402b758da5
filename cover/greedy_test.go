package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/coverdesign/combo"
	"github.com/viant/coverdesign/index/bruteforce"
)

// coverCountInvariant checks that every count equals the number of
// uncovered subsets its combination still covers.
func coverCountInvariant(t *testing.T, sel *selector, chosen map[int]bool) {
	t.Helper()
	for c := range sel.count {
		want := 0
		if !chosen[c] {
			for _, u := range sel.idx.CoveredBy(c) {
				if sel.uncovered.Test(uint(u)) {
					want++
				}
			}
		}
		require.Equal(t, want, sel.count[c], "count of combination %d", c)
	}
}

func TestSelector_Invariants(t *testing.T) {
	idx := bruteforce.New()
	require.NoError(t, idx.Build(7, combo.Positions(7, 4), combo.Positions(7, 3), 2))

	sel := newSelector(idx)
	chosen := map[int]bool{}
	coverCountInvariant(t, sel, chosen)

	prev := sel.uncovered.Count()
	for sel.uncovered.Any() {
		c, n := sel.best()
		require.Greater(t, n, 0)
		require.False(t, chosen[c], "combination %d chosen twice", c)

		gained := sel.commit(c)
		chosen[c] = true
		assert.Equal(t, n, gained)
		assert.Less(t, sel.uncovered.Count(), prev, "uncovered set must shrink")
		prev = sel.uncovered.Count()
		coverCountInvariant(t, sel, chosen)
	}
	assert.Empty(t, sel.remaining())
}

func TestSelector_BestKeepsFirstMaximum(t *testing.T) {
	sel := &selector{count: []int{1, 3, 2, 3, 3}}
	c, n := sel.best()
	assert.Equal(t, 1, c)
	assert.Equal(t, 3, n)

	sel = &selector{count: []int{0, 0}}
	c, n = sel.best()
	assert.Equal(t, -1, c)
	assert.Equal(t, 0, n)
}
