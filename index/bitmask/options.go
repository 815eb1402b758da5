package bitmask

// Option configures an Index.
type Option func(*Index)

// WithBuildParallelism splits row computation across n goroutines. Values
// below 2 build sequentially.
func WithBuildParallelism(n int) Option {
	return func(i *Index) {
		if n < 1 {
			n = 1
		}
		i.parallel = n
	}
}
