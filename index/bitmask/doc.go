// Package bitmask provides a coverage index that represents every
// combination and subset as a bitset over universe positions, so the
// intersection size of a pair is a single popcount. Rows can be computed in
// parallel; the resulting edge set is identical to the brute-force index.
package bitmask
