// Package runstore persists generated covering designs. Every run is a
// separate SQLite file in a directory handle, named after its parameters:
//
//	m-n-k-j-s-run-count.db
//
// where run is allocated per (m, n, k, j, s) tuple and count is the number of
// stored combinations. Each file holds a combinations table (JSON text plus
// an encoded BLOB usable with the engine SQL functions) and a single-row
// run_meta table with the samples and completeness of the run.
package runstore
