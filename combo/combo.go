package combo

import "math/bits"

// Positions returns every size-element combination of the positions
// 0..n-1 in lexicographic order. Each combination is ascending.
//
// A size larger than n (or negative) yields no combinations; size 0 yields a
// single empty combination.
func Positions(n, size int) [][]int {
	if size < 0 || n < 0 || size > n {
		return [][]int{}
	}
	capacity := 0
	if c, ok := Binomial(n, size); ok && c <= uint64(maxPrealloc) {
		capacity = int(c)
	}
	out := make([][]int, 0, capacity)
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))

		// rightmost position that can still advance
		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for t := i + 1; t < size; t++ {
			idx[t] = idx[t-1] + 1
		}
	}
}

// Enumerate returns every size-element combination of universe in
// lexicographic order relative to the order of universe itself (the
// universe is never re-sorted). The combination at position i of the result
// has enumeration index i.
//
// If size exceeds len(universe) the result is empty rather than an error.
func Enumerate(universe []int, size int) [][]int {
	positions := Positions(len(universe), size)
	out := make([][]int, len(positions))
	for i, p := range positions {
		out[i] = Values(universe, p)
	}
	return out
}

// Values maps ascending positions back to universe values.
func Values(universe []int, positions []int) []int {
	v := make([]int, len(positions))
	for i, p := range positions {
		v[i] = universe[p]
	}
	return v
}

// Binomial returns C(n, k). The boolean is false when the value does not fit
// in a uint64.
func Binomial(n, k int) (uint64, bool) {
	if k < 0 || n < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}
	var r uint64 = 1
	for i := 1; i <= k; i++ {
		// r = r * (n-k+i) / i stays integral at every step
		hi, lo := bits.Mul64(r, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		q, _ := bits.Div64(hi, lo, uint64(i))
		r = q
	}
	return r, true
}

const maxPrealloc = 1 << 20
