package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.True(t, strings.HasSuffix(dir, appDirName), "dir %q should end in %q", dir, appDirName)
}

func TestAppLocalDataDir_XDGOverride(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME is only honored on Linux")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	require.Equal(t, filepath.Join("/tmp/xdg-data", appDirName), AppLocalDataDir())
}

func TestUnitsDir_PrefersUserDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	userUnits := filepath.Join(AppDataDir(), "units")
	require.NoError(t, os.MkdirAll(userUnits, 0700))

	require.Equal(t, userUnits, UnitsDir())
}

func TestDBPath(t *testing.T) {
	require.Equal(t, "state.db", filepath.Base(DBPath()))
}

func TestLogFilePath(t *testing.T) {
	require.Equal(t, "unitctl.log", filepath.Base(LogFilePath()))
}

func TestConfigFilePath(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, ".unitctlrc", filepath.Base(path))
}
