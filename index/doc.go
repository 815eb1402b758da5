// Package index defines the coverage index: the bipartite relation between
// candidate combinations and target subsets, with an edge wherever the two
// share at least s universe elements. Implementations in this module include
// a brute-force baseline and a bitset/popcount index.
package index
