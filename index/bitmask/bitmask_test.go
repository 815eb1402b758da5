package bitmask

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/coverdesign/combo"
	"github.com/viant/coverdesign/index"
	"github.com/viant/coverdesign/index/bruteforce"
)

func edgeRows(idx index.Index) [][]int {
	out := make([][]int, idx.Combos())
	for c := range out {
		out[c] = append([]int{}, idx.CoveredBy(c)...)
	}
	return out
}

func reverseRows(idx index.Index) [][]int {
	out := make([][]int, idx.Subsets())
	for u := range out {
		out[u] = append([]int{}, idx.Covering(u)...)
	}
	return out
}

func TestIndex_MatchesBruteForce(t *testing.T) {
	testCases := []struct {
		n, k, j, s int
	}{
		{5, 3, 2, 2},
		{7, 4, 3, 2},
		{8, 5, 4, 3},
		{9, 6, 5, 4},
		{6, 2, 2, 3},
		{10, 4, 4, 0},
	}
	for _, tc := range testCases {
		combos := combo.Positions(tc.n, tc.k)
		subsets := combo.Positions(tc.n, tc.j)

		want := bruteforce.New()
		require.NoError(t, want.Build(tc.n, combos, subsets, tc.s))

		for _, parallel := range []int{1, 3, 16} {
			got := New(WithBuildParallelism(parallel))
			require.NoError(t, got.Build(tc.n, combos, subsets, tc.s))

			assert.Equal(t, want.Edges(), got.Edges(), "%+v parallel=%d", tc, parallel)
			if diff := cmp.Diff(edgeRows(want), edgeRows(got)); diff != "" {
				t.Errorf("%+v parallel=%d rows mismatch (-brute +bitmask):\n%s", tc, parallel, diff)
			}
			if diff := cmp.Diff(reverseRows(want), reverseRows(got)); diff != "" {
				t.Errorf("%+v parallel=%d reverse mismatch (-brute +bitmask):\n%s", tc, parallel, diff)
			}
		}
	}
}

func TestIndex_WideUniverse(t *testing.T) {
	// more than 64 positions spans several bitset words
	combos := [][]int{{0, 63, 64, 100}, {1, 2, 3, 4}}
	subsets := [][]int{{63, 64}, {2, 100}}
	idx := New()
	require.NoError(t, idx.Build(128, combos, subsets, 2))
	assert.Equal(t, []int{0}, idx.CoveredBy(0))
	assert.Empty(t, idx.CoveredBy(1))
}

func TestIndex_Empty(t *testing.T) {
	idx := New(WithBuildParallelism(4))
	require.NoError(t, idx.Build(3, nil, combo.Positions(3, 2), 1))
	assert.Equal(t, 0, idx.Combos())
	assert.Equal(t, 3, idx.Subsets())
	assert.Empty(t, idx.Covering(0))
}
