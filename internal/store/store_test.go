package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/store"
)

func TestNew_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := store.New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.SetActive("web", true, time.Now()))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestNew_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := store.New(path)
	require.NoError(t, err)
	require.NoError(t, s.SetActive("web", true, time.Now()))
	require.NoError(t, s.Close())

	s, err = store.New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	state, found, err := s.GetState("web")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, state.Active)
}
