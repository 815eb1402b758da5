package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_LexicographicOverUniverseOrder(t *testing.T) {
	got := Enumerate([]int{5, 1, 3}, 2)
	// order follows the universe sequence, not numeric value
	assert.Equal(t, [][]int{{5, 1}, {5, 3}, {1, 3}}, got)
}

func TestEnumerate_Sizes(t *testing.T) {
	universe := []int{1, 2, 3, 4, 5}
	for size := 0; size <= len(universe); size++ {
		got := Enumerate(universe, size)
		want, ok := Binomial(len(universe), size)
		require.True(t, ok)
		assert.Len(t, got, int(want), "size=%d", size)
		for _, c := range got {
			assert.Len(t, c, size)
		}
	}
}

func TestEnumerate_SizeLargerThanUniverse(t *testing.T) {
	got := Enumerate([]int{1, 2}, 3)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEnumerate_ZeroSize(t *testing.T) {
	assert.Equal(t, [][]int{{}}, Enumerate([]int{1, 2, 3}, 0))
}

func TestPositions_Ascending(t *testing.T) {
	all := Positions(6, 3)
	require.Len(t, all, 20)
	assert.Equal(t, []int{0, 1, 2}, all[0])
	assert.Equal(t, []int{3, 4, 5}, all[len(all)-1])
	for i := 1; i < len(all); i++ {
		assert.True(t, lexLess(all[i-1], all[i]), "%v !< %v", all[i-1], all[i])
	}
}

func TestBinomial(t *testing.T) {
	testCases := []struct {
		n, k int
		want uint64
		ok   bool
	}{
		{5, 2, 10, true},
		{10, 0, 1, true},
		{10, 10, 1, true},
		{3, 4, 0, true},
		{54, 6, 25827165, true},
		{67, 33, 14226520737620288370, true},
		{68, 34, 0, false},
	}
	for _, tc := range testCases {
		got, ok := Binomial(tc.n, tc.k)
		assert.Equal(t, tc.ok, ok, "C(%d,%d) ok", tc.n, tc.k)
		if tc.ok {
			assert.Equal(t, tc.want, got, "C(%d,%d)", tc.n, tc.k)
		}
	}
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
