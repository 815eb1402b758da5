package cover

import (
	"fmt"
	"math/bits"
	"time"

	"go.uber.org/zap"

	"github.com/viant/coverdesign/combo"
	"github.com/viant/coverdesign/index"
	"github.com/viant/coverdesign/index/bitmask"
	"github.com/viant/coverdesign/index/bruteforce"
)

// Result is the outcome of one generation run.
type Result struct {
	// Combinations are the selected k-combinations in selection order.
	Combinations [][]int
	// Uncovered lists the j-subsets left uncovered, in enumeration order.
	// It is empty when Complete is true.
	Uncovered [][]int
	// Complete reports whether every j-subset is covered.
	Complete bool

	Candidates int
	Targets    int
	Edges      int
	IndexKind  index.Kind
}

// Generate selects k-combinations of samples until every j-subset of samples
// shares at least s elements with one of them, or no candidate can cover any
// remaining subset.
func Generate(samples []int, k, j, s int, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	if k < 0 || j < 0 || s < 0 {
		return nil, fmt.Errorf("%w: negative size (k=%d, j=%d, s=%d)", ErrInvalidParameter, k, j, s)
	}
	if err := checkDistinct(samples); err != nil {
		return nil, err
	}
	n := len(samples)

	nc, okc := combo.Binomial(n, k)
	nt, okt := combo.Binomial(n, j)
	hi, pairs := bits.Mul64(nc, nt)
	overflow := !okc || !okt || hi != 0
	if o.maxPairs > 0 && (overflow || pairs > o.maxPairs) {
		return nil, fmt.Errorf("%w: C(%d,%d) x C(%d,%d) exceeds %d pairs", ErrTooLarge, n, k, n, j, o.maxPairs)
	}
	if overflow {
		pairs = ^uint64(0)
	}

	started := time.Now()
	combos := combo.Positions(n, k)
	subsets := combo.Positions(n, j)

	kind := index.Resolve(o.kind, pairs)
	idx := newIndex(kind, o.parallel)
	if err := idx.Build(n, combos, subsets, s); err != nil {
		return nil, err
	}
	o.logger.Debug("coverage index built",
		zap.String("index", string(kind)),
		zap.Int("candidates", len(combos)),
		zap.Int("targets", len(subsets)),
		zap.Int("edges", idx.Edges()),
		zap.Duration("elapsed", time.Since(started)),
	)

	sel := newSelector(idx)
	chosen := sel.run(func(c, gained, remaining int) {
		o.logger.Debug("combination selected",
			zap.Ints("combination", combo.Values(samples, combos[c])),
			zap.Int("covered", gained),
			zap.Int("remaining", remaining),
		)
	})

	res := &Result{
		Combinations: make([][]int, len(chosen)),
		Candidates:   len(combos),
		Targets:      len(subsets),
		Edges:        idx.Edges(),
		IndexKind:    kind,
	}
	for i, c := range chosen {
		res.Combinations[i] = combo.Values(samples, combos[c])
	}
	left := sel.remaining()
	res.Uncovered = make([][]int, len(left))
	for i, u := range left {
		res.Uncovered[i] = combo.Values(samples, subsets[u])
	}
	res.Complete = len(left) == 0

	fields := []zap.Field{
		zap.Int("k", k), zap.Int("j", j), zap.Int("s", s),
		zap.Int("selected", len(res.Combinations)),
		zap.Int("uncovered", len(res.Uncovered)),
		zap.Duration("elapsed", time.Since(started)),
	}
	if res.Complete {
		o.logger.Info("cover complete", fields...)
	} else {
		o.logger.Warn("cover incomplete", fields...)
	}
	return res, nil
}

func newIndex(kind index.Kind, parallel int) index.Index {
	if kind == index.KindBitmask {
		return bitmask.New(bitmask.WithBuildParallelism(parallel))
	}
	return bruteforce.New()
}

func checkDistinct(samples []int) error {
	seen := make(map[int]struct{}, len(samples))
	for _, v := range samples {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: duplicate sample %d", ErrInvalidParameter, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Verify reports the j-subsets of samples not covered by combinations with
// threshold s, in enumeration order. It is independent of the index and
// selector and is used to audit stored or hand-made designs.
func Verify(samples []int, j, s int, combinations [][]int) [][]int {
	var missing [][]int
	for _, subset := range combo.Enumerate(samples, j) {
		covered := false
		for _, c := range combinations {
			if combo.Covers(c, subset, s) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, subset)
		}
	}
	return missing
}
