package cover

import (
	"go.uber.org/zap"

	"github.com/viant/coverdesign/index"
)

type options struct {
	kind     index.Kind
	parallel int
	maxPairs uint64
	logger   *zap.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		kind:     index.KindAuto,
		parallel: 1,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Generate.
type Option func(*options)

// WithIndexKind selects the coverage index implementation.
func WithIndexKind(kind index.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// WithBuildParallelism sets how many goroutines build the bitmask index.
func WithBuildParallelism(n int) Option {
	return func(o *options) { o.parallel = n }
}

// WithMaxPairs rejects runs whose candidate x target product exceeds n.
// Zero disables the limit.
func WithMaxPairs(n uint64) Option {
	return func(o *options) { o.maxPairs = n }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
