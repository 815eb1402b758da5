package index

import "fmt"

// Adjacency holds both directions of a built coverage relation. It is the
// shared storage of the Index implementations.
type Adjacency struct {
	comboToSubsets [][]int
	subsetToCombos [][]int
	edges          int
}

// NewAdjacency assembles an Adjacency from per-combination rows; rows[c]
// lists the subsets covered by combination c in ascending order. The reverse
// direction is filled by walking combinations in enumeration order, which
// keeps every Covering list ascending.
func NewAdjacency(rows [][]int, subsets int) Adjacency {
	a := Adjacency{
		comboToSubsets: rows,
		subsetToCombos: make([][]int, subsets),
	}
	degree := make([]int, subsets)
	for _, row := range rows {
		for _, u := range row {
			degree[u]++
		}
		a.edges += len(row)
	}
	for u := range a.subsetToCombos {
		a.subsetToCombos[u] = make([]int, 0, degree[u])
	}
	for c, row := range rows {
		for _, u := range row {
			a.subsetToCombos[u] = append(a.subsetToCombos[u], c)
		}
	}
	return a
}

// CoveredBy implements Index.
func (a *Adjacency) CoveredBy(combo int) []int { return a.comboToSubsets[combo] }

// Covering implements Index.
func (a *Adjacency) Covering(subset int) []int { return a.subsetToCombos[subset] }

// Combos implements Index.
func (a *Adjacency) Combos() int { return len(a.comboToSubsets) }

// Subsets implements Index.
func (a *Adjacency) Subsets() int { return len(a.subsetToCombos) }

// Edges implements Index.
func (a *Adjacency) Edges() int { return a.edges }

// Validate checks Build arguments shared by all implementations.
func Validate(universeSize int, combos, subsets [][]int, s int) error {
	if s < 0 {
		return fmt.Errorf("index: negative threshold s=%d", s)
	}
	if universeSize < 0 {
		return fmt.Errorf("index: negative universe size %d", universeSize)
	}
	check := func(kind string, sets [][]int) error {
		for i, set := range sets {
			for t, p := range set {
				if p < 0 || p >= universeSize {
					return fmt.Errorf("index: %s %d position %d out of range [0, %d)", kind, i, p, universeSize)
				}
				if t > 0 && p <= set[t-1] {
					return fmt.Errorf("index: %s %d positions not strictly ascending", kind, i)
				}
			}
		}
		return nil
	}
	if err := check("combination", combos); err != nil {
		return err
	}
	return check("subset", subsets)
}
