// Package bruteforce provides a coverage index that scores every
// combination/subset pair by merging their sorted positions. It is the
// reference implementation the faster indexes are checked against.
package bruteforce
