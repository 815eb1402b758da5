// Package cover computes covering designs with a greedy maximum-coverage
// heuristic.
//
// Given samples, Generate enumerates every k-combination (candidates) and
// every j-subset (targets) in lexicographic order over the sample sequence,
// indexes which candidates share at least s elements with which targets,
// and then repeatedly selects the candidate covering the most still
// uncovered targets. Ties go to the candidate with the smallest enumeration
// index, so output is fully deterministic for a given sample sequence.
//
// The package performs no I/O. A run that cannot cover every target is not
// an error: Result.Complete is false and Result.Uncovered lists the residue.
//
// Edge cases:
//   - j > len(samples): there are no targets; the result is empty and
//     complete.
//   - k > len(samples) with j <= len(samples): there are no candidates; the
//     result is empty and incomplete.
//   - s > min(k, j): no candidate can cover any target; the result is empty
//     and incomplete.
package cover
