package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/coverdesign/combo"
)

func TestIndex_Build(t *testing.T) {
	combos := combo.Positions(4, 3)  // 012 013 023 123
	subsets := combo.Positions(4, 2) // 01 02 03 12 13 23

	idx := New()
	require.NoError(t, idx.Build(4, combos, subsets, 2))

	// every 3-combination contains exactly three pairs
	assert.Equal(t, 12, idx.Edges())
	assert.Equal(t, []int{0, 1, 3}, idx.CoveredBy(0))
	assert.Equal(t, []int{3, 4, 5}, idx.CoveredBy(3))
	// pair {0,1} lies in 012 and 013
	assert.Equal(t, []int{0, 1}, idx.Covering(0))
	assert.Equal(t, 4, idx.Combos())
	assert.Equal(t, 6, idx.Subsets())
}

func TestIndex_ZeroThreshold(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build(3, combo.Positions(3, 1), combo.Positions(3, 2), 0))
	assert.Equal(t, 9, idx.Edges())
}

func TestIndex_Unreachable(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build(4, combo.Positions(4, 2), combo.Positions(4, 2), 3))
	assert.Equal(t, 0, idx.Edges())
	for u := 0; u < idx.Subsets(); u++ {
		assert.Empty(t, idx.Covering(u))
	}
}

func TestIndex_InvalidInput(t *testing.T) {
	assert.Error(t, New().Build(2, [][]int{{0, 2}}, nil, 1))
	assert.Error(t, New().Build(2, nil, nil, -1))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, 2, intersect([]int{0, 2, 4}, []int{1, 2, 4}))
	assert.Equal(t, 0, intersect(nil, []int{1}))
}
