package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_Properties(t *testing.T) {
	s := New(WithSeed(42))
	testCases := []struct{ m, n int }{
		{0, 0}, {1, 1}, {5, 0}, {10, 3}, {45, 7}, {54, 25}, {20, 20},
	}
	for _, tc := range testCases {
		got, err := s.Draw(tc.m, tc.n)
		require.NoError(t, err, "m=%d n=%d", tc.m, tc.n)
		require.Len(t, got, tc.n)
		for i, v := range got {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, tc.m)
			if i > 0 {
				assert.Greater(t, v, got[i-1], "strictly ascending")
			}
		}
	}
}

func TestDraw_FullRange(t *testing.T) {
	got, err := New(WithSeed(7)).Draw(6, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestDraw_Seeded(t *testing.T) {
	a, err := New(WithSeed(99)).Draw(54, 10)
	require.NoError(t, err)
	b, err := New(WithSeed(99)).Draw(54, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDraw_Invalid(t *testing.T) {
	for _, tc := range []struct{ m, n int }{{3, 4}, {-1, 0}, {5, -2}} {
		_, err := Draw(tc.m, tc.n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSampleRequest), "m=%d n=%d", tc.m, tc.n)
	}
}

func TestDraw_Default(t *testing.T) {
	got, err := Draw(45, 7)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}
