package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"":        KindAuto,
		"AUTO":    KindAuto,
		"brute":   KindBrute,
		"bitset":  KindBitmask,
		"bitmask": KindBitmask,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("cover")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, KindBrute, Resolve(KindAuto, 10))
	assert.Equal(t, KindBitmask, Resolve(KindAuto, autoBitmaskMinPairs))
	assert.Equal(t, KindBrute, Resolve(KindBrute, 1<<40))
	assert.Equal(t, KindBitmask, Resolve(KindBitmask, 1))
}

func TestNewAdjacency(t *testing.T) {
	rows := [][]int{{0, 2}, {}, {1, 2}}
	a := NewAdjacency(rows, 3)
	assert.Equal(t, 4, a.Edges())
	assert.Equal(t, 3, a.Combos())
	assert.Equal(t, 3, a.Subsets())
	assert.Equal(t, []int{0}, a.Covering(0))
	assert.Equal(t, []int{2}, a.Covering(1))
	assert.Equal(t, []int{0, 2}, a.Covering(2))
	assert.Equal(t, []int{1, 2}, a.CoveredBy(2))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(3, [][]int{{0, 1}}, [][]int{{2}}, 1))
	assert.Error(t, Validate(3, [][]int{{0, 3}}, nil, 1))
	assert.Error(t, Validate(3, [][]int{{1, 0}}, nil, 1))
	assert.Error(t, Validate(3, nil, nil, -1))
}
