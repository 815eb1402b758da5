package bruteforce

import (
	"github.com/viant/coverdesign/index"
)

// Index is a brute-force coverage index.
type Index struct {
	index.Adjacency
}

// New creates an empty brute-force index.
func New() *Index { return &Index{} }

// Build scans the full cross product of combinations and subsets.
func (i *Index) Build(universeSize int, combos, subsets [][]int, s int) error {
	if err := index.Validate(universeSize, combos, subsets, s); err != nil {
		return err
	}
	rows := make([][]int, len(combos))
	for c, combo := range combos {
		var row []int
		for u, subset := range subsets {
			if intersect(combo, subset) >= s {
				row = append(row, u)
			}
		}
		rows[c] = row
	}
	i.Adjacency = index.NewAdjacency(rows, len(subsets))
	return nil
}

// intersect counts common elements of two ascending position lists.
func intersect(a, b []int) int {
	n, x, y := 0, 0, 0
	for x < len(a) && y < len(b) {
		switch {
		case a[x] == b[y]:
			n++
			x++
			y++
		case a[x] < b[y]:
			x++
		default:
			y++
		}
	}
	return n
}

var _ index.Index = (*Index)(nil)
