package engine

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/coverdesign/combo"
)

func TestRegisterCoverFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	require.NoError(t, RegisterCoverFunctions())
	require.NoError(t, RegisterCoverFunctions(), "registration is idempotent")

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	a, err := combo.Encode([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := combo.Encode([]int{2, 3, 4})
	require.NoError(t, err)
	c, err := combo.Encode([]int{7, 8})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.QueryRow(`SELECT cover_overlap(?, ?)`, a, b).Scan(&n))
	assert.EqualValues(t, 2, n)

	require.NoError(t, db.QueryRow(`SELECT cover_overlap(?, ?)`, a, c).Scan(&n))
	assert.EqualValues(t, 0, n)

	require.NoError(t, db.QueryRow(`SELECT cover_covers(?, ?, 2)`, a, b).Scan(&n))
	assert.EqualValues(t, 1, n)

	require.NoError(t, db.QueryRow(`SELECT cover_covers(?, ?, 3)`, a, b).Scan(&n))
	assert.EqualValues(t, 0, n)

	require.NoError(t, db.QueryRow(`SELECT cover_size(?)`, c).Scan(&n))
	assert.EqualValues(t, 2, n)

	var covers sql.NullInt64
	require.NoError(t, db.QueryRow(`SELECT cover_covers(NULL, ?, 0)`, a).Scan(&covers))
	assert.False(t, covers.Valid)
}

func TestCoverCoversInTable(t *testing.T) {
	require.NoError(t, RegisterCoverFunctions())
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE combinations(id INTEGER PRIMARY KEY, members BLOB)`)
	require.NoError(t, err)
	for _, members := range [][]int{{1, 2, 3}, {1, 4, 5}, {2, 3, 4}} {
		blob, err := combo.Encode(members)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO combinations(members) VALUES (?)`, blob)
		require.NoError(t, err)
	}

	probe, err := combo.Encode([]int{4, 5})
	require.NoError(t, err)
	rows, err := db.Query(`SELECT id FROM combinations WHERE cover_covers(members, ?, 1) = 1 ORDER BY id`, probe)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{2, 3}, ids)
}
