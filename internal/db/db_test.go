package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFileDatabase(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "savings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	var fk int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestOpenMemoryDatabaseKeepsSchemaAcrossQueries(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.Exec(`CREATE TABLE probe (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO probe (id) VALUES (1)`)
	require.NoError(t, err)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}
