// Package combo enumerates fixed-size combinations over an ordered universe
// and provides the small helpers shared by the generator and the run store:
//   - lexicographic enumeration of positions and values
//   - binomial sizing with overflow detection
//   - intersection size and indicator-vector similarity
//   - a compact BLOB encoding for persisting combinations in SQLite
package combo
