package index

// Index is a coverage index over combinations and target subsets, both given
// as ascending positions into a universe of universeSize elements. Indices
// passed to and returned by an Index are enumeration indices.
type Index interface {
	// Build computes every (subset, combination) edge with intersection
	// size >= s. It replaces any previously built relation.
	Build(universeSize int, combos, subsets [][]int, s int) error

	// CoveredBy returns the subsets covered by combo in ascending order.
	CoveredBy(combo int) []int

	// Covering returns the combinations covering subset in ascending order.
	Covering(subset int) []int

	// Combos returns the number of combinations the index was built with.
	Combos() int

	// Subsets returns the number of target subsets the index was built with.
	Subsets() int

	// Edges returns the total number of edges.
	Edges() int
}
