package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/store/migrations"
)

// NewTestStore creates a Store backed by an in-memory SQLite database
// with migrations applied. It is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return store.NewWithDB(db)
}

// SeedEvents inserts a slice of journal events into the test store.
func SeedEvents(t *testing.T, s *store.Store, events []store.UnitEvent) {
	t.Helper()

	for _, event := range events {
		err := s.InsertEvent(event)
		require.NoError(t, err, "failed to seed event: %+v", event)
	}
}
