package combo

import (
	"errors"
	"fmt"

	"github.com/viant/vec/search"
)

// ErrOutsideUniverse is returned when a combination holds values that are not
// part of the universe it is compared over.
var ErrOutsideUniverse = errors.New("combo: value outside universe")

// Overlap returns the number of values shared by a and b. Both slices are
// treated as sets; their order does not matter.
func Overlap(a, b []int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	seen := make(map[int]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	n := 0
	for _, v := range b {
		if _, ok := seen[v]; ok {
			n++
			delete(seen, v)
		}
	}
	return n
}

// Covers reports whether combination shares at least s values with subset.
func Covers(combination, subset []int, s int) bool {
	return Overlap(combination, subset) >= s
}

// Indicator returns the 0/1 membership vector of members over universe.
// Members that are not part of universe are ignored; use Outside to detect
// them.
func Indicator(universe, members []int) []float32 {
	pos := positions(universe)
	out := make([]float32, len(universe))
	for _, m := range members {
		if i, ok := pos[m]; ok {
			out[i] = 1
		}
	}
	return out
}

// Outside returns the members that are not part of universe, in order.
func Outside(universe, members []int) []int {
	pos := positions(universe)
	var out []int
	for _, m := range members {
		if _, ok := pos[m]; !ok {
			out = append(out, m)
		}
	}
	return out
}

func positions(universe []int) map[int]int {
	pos := make(map[int]int, len(universe))
	for i, v := range universe {
		pos[v] = i
	}
	return pos
}

// Similarity computes the cosine similarity between the indicator vectors of
// a and b over universe. Identical combinations score 1, disjoint ones 0.
// Members outside universe fail with ErrOutsideUniverse.
func Similarity(universe, a, b []int) (float64, error) {
	for _, members := range [][]int{a, b} {
		if missing := Outside(universe, members); len(missing) > 0 {
			return 0, fmt.Errorf("%w: %v", ErrOutsideUniverse, missing)
		}
	}
	va := search.Float32s(Indicator(universe, a))
	vb := Indicator(universe, b)
	if va.Magnitude() == 0 || search.Float32s(vb).Magnitude() == 0 {
		return 0, fmt.Errorf("combo: similarity with empty combination")
	}
	return 1 - float64(va.CosineDistance(vb)), nil
}
