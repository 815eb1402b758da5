package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/viant/coverdesign/combo"
	"github.com/viant/coverdesign/engine"
)

// SQLiteStore is a Store keeping one SQLite file per run in a directory. It
// is safe for concurrent use; run numbers are allocated under a mutex and
// files are written under a temporary name and renamed into place.
type SQLiteStore struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *SQLiteStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSQLiteStore creates a store rooted at dir, creating the directory if
// needed. It registers the engine SQL functions used by Covering.
func NewSQLiteStore(dir string, opts ...Option) (*SQLiteStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("runstore: dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("runstore: create %s: %w", dir, err)
	}
	if err := engine.RegisterCoverFunctions(); err != nil {
		return nil, err
	}
	s := &SQLiteStore{dir: dir, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the directory holding the run files.
func (s *SQLiteStore) Dir() string { return s.dir }

// Path returns the file path of a run.
func (s *SQLiteStore) Path(id RunID) string { return filepath.Join(s.dir, id.FileName()) }

// Save writes rec under the next run number for its parameters.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) (RunID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.List(ctx, ForParams(rec.Params))
	if err != nil {
		return RunID{}, err
	}
	next := 1
	for _, id := range existing {
		if id.Run >= next {
			next = id.Run + 1
		}
	}
	id := RunID{Params: rec.Params, Run: next, Count: len(rec.Combinations)}

	tmp := filepath.Join(s.dir, "."+id.FileName()+".tmp")
	_ = os.Remove(tmp)
	if err := s.write(ctx, tmp, id, rec); err != nil {
		_ = os.Remove(tmp)
		return RunID{}, err
	}
	if err := os.Rename(tmp, s.Path(id)); err != nil {
		_ = os.Remove(tmp)
		return RunID{}, fmt.Errorf("runstore: publish %s: %w", id, err)
	}
	s.logger.Info("run saved",
		zap.Stringer("run", id),
		zap.Int("combinations", id.Count),
		zap.Bool("complete", rec.Complete),
	)
	return id, nil
}

func (s *SQLiteStore) write(ctx context.Context, path string, id RunID, rec Record) error {
	db, err := engine.OpenFile(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	samples, err := json.Marshal(nonNil(rec.Samples))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO run_meta(id, m, n, k, j, s, run, samples, complete, uncovered, created_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.M, id.N, id.K, id.J, id.S, id.Run, string(samples), rec.Complete, rec.Uncovered, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO combinations(combination, members) VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range rec.Combinations {
		text, err := json.Marshal(c)
		if err != nil {
			return err
		}
		members, err := combo.Encode(c)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, string(text), members); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads a run. Files written without run_meta load as legacy runs.
func (s *SQLiteStore) Load(ctx context.Context, id RunID) (*Run, error) {
	db, err := s.open(id)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	run := &Run{ID: id}
	ok, err := hasTable(ctx, db, "run_meta")
	if err != nil {
		return nil, err
	}
	if ok {
		var samples, created string
		err := db.QueryRowContext(ctx, `SELECT samples, complete, uncovered, created_at FROM run_meta WHERE id = 1`).
			Scan(&samples, &run.Complete, &run.Uncovered, &created)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			run.Legacy = true
		case err != nil:
			return nil, err
		default:
			if err := json.Unmarshal([]byte(samples), &run.Samples); err != nil {
				return nil, fmt.Errorf("runstore: %s samples: %w", id, err)
			}
			if run.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
				return nil, fmt.Errorf("runstore: %s created_at: %w", id, err)
			}
		}
	} else {
		run.Legacy = true
	}

	if run.Combinations, err = readCombinations(ctx, db, id); err != nil {
		return nil, err
	}
	return run, nil
}

// readCombinations decodes the JSON combination column in stored order.
func readCombinations(ctx context.Context, db *sql.DB, id RunID) ([][]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT combination FROM combinations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := [][]int{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		var c []int
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("runstore: %s combination %q: %w", id, text, err)
		}
		out = append(out, nonNil(c))
	}
	return out, rows.Err()
}

// List returns the runs in the directory matching f. Files whose names do
// not parse as run ids are skipped.
func (s *SQLiteStore) List(_ context.Context, f Filter) ([]RunID, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*"+fileExt))
	if err != nil {
		return nil, err
	}
	var out []RunID
	for _, p := range paths {
		id, err := ParseRunID(p)
		if err != nil {
			s.logger.Debug("skipping file", zap.String("path", p), zap.Error(err))
			continue
		}
		if f.Matches(id) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(a, b int) bool { return less(out[a], out[b]) })
	return out, nil
}

// Delete removes the run file.
func (s *SQLiteStore) Delete(_ context.Context, id RunID) error {
	err := os.Remove(s.Path(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("runstore: delete %s: %w", id, err)
	}
	if err == nil {
		s.logger.Info("run deleted", zap.Stringer("run", id))
	}
	return nil
}

// Covering evaluates coverage inside SQLite with cover_covers. Empty
// combinations are stored as NULL and cover a subset only when threshold is
// at most 0. Files without the members column are filtered in Go from the
// JSON combination column.
func (s *SQLiteStore) Covering(ctx context.Context, id RunID, subset []int, threshold int) ([][]int, error) {
	probe, err := combo.Encode(subset)
	if err != nil {
		return nil, err
	}
	if probe == nil {
		return nil, fmt.Errorf("runstore: empty subset")
	}
	db, err := s.open(id)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ok, err := hasColumn(ctx, db, "combinations", "members")
	if err != nil {
		return nil, err
	}
	if !ok {
		all, err := readCombinations(ctx, db, id)
		if err != nil {
			return nil, err
		}
		var out [][]int
		for _, c := range all {
			if combo.Covers(c, subset, threshold) {
				out = append(out, c)
			}
		}
		return out, nil
	}

	rows, err := db.QueryContext(ctx, `SELECT members FROM combinations
WHERE cover_covers(members, ?, ?) = 1 OR (members IS NULL AND ? <= 0)
ORDER BY id`, probe, threshold, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out [][]int
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		c, err := combo.Decode(blob)
		if err != nil {
			return nil, err
		}
		out = append(out, nonNil(c))
	}
	return out, rows.Err()
}

// Similar ranks combinations by cosine similarity of their indicator
// vectors over the run samples (or over the values present in the run for
// legacy files).
func (s *SQLiteStore) Similar(ctx context.Context, id RunID, probe []int, k int) ([]Match, error) {
	run, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	universe := run.Samples
	if len(universe) == 0 {
		universe = valuesOf(run.Combinations)
	}
	if missing := combo.Outside(universe, probe); len(missing) > 0 {
		return nil, fmt.Errorf("runstore: %s probe: %w: %v", id, combo.ErrOutsideUniverse, missing)
	}
	out := make([]Match, 0, len(run.Combinations))
	for i, c := range run.Combinations {
		score, err := combo.Similarity(universe, probe, c)
		if err != nil {
			return nil, err
		}
		out = append(out, Match{Row: int64(i + 1), Combination: c, Score: score})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}

func (s *SQLiteStore) open(id RunID) (*sql.DB, error) {
	path := s.Path(id)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return engine.OpenFile(path)
}

func less(a, b RunID) bool {
	x := [...]int{a.M, a.N, a.K, a.J, a.S, a.Run, a.Count}
	y := [...]int{b.M, b.N, b.K, b.J, b.S, b.Run, b.Count}
	for i := range x {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return false
}

func valuesOf(combinations [][]int) []int {
	seen := map[int]struct{}{}
	var out []int
	for _, c := range combinations {
		for _, v := range c {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return out
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
