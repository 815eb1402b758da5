package runstore

import (
	"context"
	"database/sql"
)

const combinationsSchema = `
CREATE TABLE IF NOT EXISTS combinations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    combination TEXT NOT NULL,
    members BLOB
);
`

const runMetaSchema = `
CREATE TABLE IF NOT EXISTS run_meta (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    m          INTEGER NOT NULL,
    n          INTEGER NOT NULL,
    k          INTEGER NOT NULL,
    j          INTEGER NOT NULL,
    s          INTEGER NOT NULL,
    run        INTEGER NOT NULL,
    samples    TEXT NOT NULL,
    complete   INTEGER NOT NULL,
    uncovered  INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
`

// EnsureSchema creates the run tables in db if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, combinationsSchema); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, runMetaSchema)
	return err
}

func hasTable(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	return n > 0, err
}

func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	return n > 0, err
}
