package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	// Versions must be sorted and unique
	for i := 1; i < len(migrations); i++ {
		require.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
}

func TestRun_FreshDatabase(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, Run(db))

	// Core tables must exist
	for _, table := range []string{"unit_state", "unit_events", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))

	migrations, err := Load()
	require.NoError(t, err)
	require.Equal(t, len(migrations), count)
}

func TestCurrentVersion(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, Run(db))

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.GreaterOrEqual(t, version, 1)
}

func TestParseFilename(t *testing.T) {
	version, description, err := parseFilename("03_add_index.sql")
	require.NoError(t, err)
	require.Equal(t, 3, version)
	require.Equal(t, "add_index", description)

	_, _, err = parseFilename("nonsense.sql")
	require.Error(t, err)

	_, _, err = parseFilename("xx_bad.sql")
	require.Error(t, err)
}
