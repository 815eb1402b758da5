package bitmask

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/viant/coverdesign/index"
)

// Index is a popcount-based coverage index.
type Index struct {
	index.Adjacency
	parallel int
}

// New creates an empty bitmask index.
func New(opts ...Option) *Index {
	i := &Index{parallel: 1}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Build computes the coverage relation. Each worker owns a disjoint range
// of combination rows, so no synchronization is needed beyond the final
// wait.
func (i *Index) Build(universeSize int, combos, subsets [][]int, s int) error {
	if err := index.Validate(universeSize, combos, subsets, s); err != nil {
		return err
	}
	comboBits := toBitsets(universeSize, combos)
	subsetBits := toBitsets(universeSize, subsets)
	threshold := uint(s)

	rows := make([][]int, len(combos))
	fill := func(from, to int) {
		for c := from; c < to; c++ {
			var row []int
			for u, sb := range subsetBits {
				if comboBits[c].IntersectionCardinality(sb) >= threshold {
					row = append(row, u)
				}
			}
			rows[c] = row
		}
	}

	workers := i.parallel
	if workers > len(combos) {
		workers = len(combos)
	}
	if workers < 2 {
		fill(0, len(combos))
	} else {
		var g errgroup.Group
		chunk := (len(combos) + workers - 1) / workers
		for from := 0; from < len(combos); from += chunk {
			from, to := from, min(from+chunk, len(combos))
			g.Go(func() error {
				fill(from, to)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	i.Adjacency = index.NewAdjacency(rows, len(subsets))
	return nil
}

func toBitsets(universeSize int, sets [][]int) []*bitset.BitSet {
	out := make([]*bitset.BitSet, len(sets))
	for i, set := range sets {
		b := bitset.New(uint(universeSize))
		for _, p := range set {
			b.Set(uint(p))
		}
		out[i] = b
	}
	return out
}

var _ index.Index = (*Index)(nil)
