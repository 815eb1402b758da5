package runstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a run file does not exist.
	ErrNotFound = errors.New("runstore: run not found")

	// ErrInvalidRunID is returned for names that do not follow the
	// m-n-k-j-s-run-count scheme.
	ErrInvalidRunID = errors.New("runstore: invalid run id")
)

// Params are the generation parameters that identify a family of runs.
type Params struct {
	M int `json:"m" yaml:"m"`
	N int `json:"n" yaml:"n"`
	K int `json:"k" yaml:"k"`
	J int `json:"j" yaml:"j"`
	S int `json:"s" yaml:"s"`
}

// Record is a generated design to persist.
type Record struct {
	Params       Params
	Samples      []int
	Combinations [][]int
	// Uncovered is the number of j-subsets the design leaves uncovered.
	Uncovered int
	Complete  bool
}

// Run is a stored design.
type Run struct {
	ID           RunID     `json:"id" yaml:"id"`
	Samples      []int     `json:"samples,omitempty" yaml:"samples,omitempty"`
	Complete     bool      `json:"complete" yaml:"complete"`
	Uncovered    int       `json:"uncovered" yaml:"uncovered"`
	CreatedAt    time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Combinations [][]int   `json:"combinations" yaml:"combinations"`
	// Legacy is set for files written without run_meta; Samples, Complete
	// and CreatedAt are then unknown.
	Legacy bool `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

// Match is a stored combination ranked against a probe.
type Match struct {
	Row         int64   `json:"row" yaml:"row"`
	Combination []int   `json:"combination" yaml:"combination"`
	Score       float64 `json:"score" yaml:"score"`
}

// Filter selects runs by parameters; nil fields match anything.
type Filter struct {
	M, N, K, J, S *int
}

// Store defines the run persistence API consumed by the front-end.
type Store interface {
	// Save writes rec as a new run and returns its identity.
	Save(ctx context.Context, rec Record) (RunID, error)

	// Load reads a stored run.
	Load(ctx context.Context, id RunID) (*Run, error)

	// List returns stored runs matching f, ordered by parameters and run.
	List(ctx context.Context, f Filter) ([]RunID, error)

	// Delete removes a stored run; deleting a missing run is not an error.
	Delete(ctx context.Context, id RunID) error

	// Covering returns the stored combinations sharing at least s values
	// with subset, in stored order.
	Covering(ctx context.Context, id RunID, subset []int, s int) ([][]int, error)

	// Similar ranks stored combinations by similarity to probe and returns up
	// to k matches; k <= 0 returns all.
	Similar(ctx context.Context, id RunID, probe []int, k int) ([]Match, error)
}
