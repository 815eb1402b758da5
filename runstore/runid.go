package runstore

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const fileExt = ".db"

// RunID identifies a stored run.
type RunID struct {
	Params `yaml:",inline"`
	Run   int `json:"run" yaml:"run"`
	Count int `json:"count" yaml:"count"`
}

// String returns the m-n-k-j-s-run-count form.
func (r RunID) String() string {
	return fmt.Sprintf("%s-%d-%d", r.Params.prefix(), r.Run, r.Count)
}

// FileName returns the database file name of the run.
func (r RunID) FileName() string { return r.String() + fileExt }

// prefix is the m-n-k-j-s part shared by all runs of the same parameters.
func (p Params) prefix() string {
	return fmt.Sprintf("%d-%d-%d-%d-%d", p.M, p.N, p.K, p.J, p.S)
}

// ParseRunID parses a run name. A directory and the .db extension are
// accepted and ignored.
func ParseRunID(name string) (RunID, error) {
	base := strings.TrimSuffix(filepath.Base(name), fileExt)
	parts := strings.Split(base, "-")
	if len(parts) != 7 {
		return RunID{}, fmt.Errorf("%w: %q", ErrInvalidRunID, name)
	}
	var v [7]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return RunID{}, fmt.Errorf("%w: %q", ErrInvalidRunID, name)
		}
		v[i] = n
	}
	return RunID{
		Params: Params{M: v[0], N: v[1], K: v[2], J: v[3], S: v[4]},
		Run:    v[5],
		Count:  v[6],
	}, nil
}

// Matches reports whether id satisfies the filter.
func (f Filter) Matches(id RunID) bool {
	match := func(want *int, got int) bool { return want == nil || *want == got }
	return match(f.M, id.M) && match(f.N, id.N) && match(f.K, id.K) && match(f.J, id.J) && match(f.S, id.S)
}

// ForParams returns a filter matching exactly p.
func ForParams(p Params) Filter {
	return Filter{M: &p.M, N: &p.N, K: &p.K, J: &p.J, S: &p.S}
}
