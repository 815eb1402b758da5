package sample

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrInvalidSampleRequest is returned when n distinct values cannot be drawn
// from [1, m].
var ErrInvalidSampleRequest = errors.New("sample: invalid sample request")

// Sampler draws sorted samples without replacement. A Sampler is safe for
// concurrent use.
type Sampler struct {
	mu  sync.Mutex
	src rand.Source
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed makes the sampler deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) { s.src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }
}

// WithSource uses src for all random numbers. A nil src falls back to the
// global source.
func WithSource(src rand.Source) Option {
	return func(s *Sampler) { s.src = src }
}

// New creates a Sampler. Without options it uses the global math/rand/v2
// source.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw returns n distinct integers from [1, m] in ascending order.
//
// It fails with ErrInvalidSampleRequest when n > m or either argument is
// negative.
func (s *Sampler) Draw(m, n int) ([]int, error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("%w: negative size (m=%d, n=%d)", ErrInvalidSampleRequest, m, n)
	}
	if n > m {
		return nil, fmt.Errorf("%w: cannot draw %d distinct values from [1, %d]", ErrInvalidSampleRequest, n, m)
	}
	out := make([]int, n)
	if n == 0 {
		return out, nil
	}
	s.mu.Lock()
	sampleuv.WithoutReplacement(out, m, s.src)
	s.mu.Unlock()
	for i := range out {
		out[i]++
	}
	sort.Ints(out)
	return out, nil
}

var defaultSampler = New()

// Draw draws from the package default sampler.
func Draw(m, n int) ([]int, error) { return defaultSampler.Draw(m, n) }
