package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/config"
	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/units"
)

// testEnv is a Deps bundle wired to a temp units directory and a temp
// database, with output captured.
type testEnv struct {
	deps     Deps
	unitsDir string
	dbPath   string
	cfgLines []string
	out      strings.Builder
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		unitsDir: t.TempDir(),
		dbPath:   filepath.Join(t.TempDir(), "state.db"),
		cfgLines: []string{"# unitctl configuration", "log_level=warn"},
		now:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	env.deps = Deps{
		UnitsDir:  func() string { return env.unitsDir },
		LoadUnits: units.Load,
		ReadFile:  os.ReadFile,

		DBPath:    func() string { return env.dbPath },
		OpenStore: store.New,

		ReadConfig: func() ([]string, error) {
			return append([]string(nil), env.cfgLines...), nil
		},
		WriteConfig: func(lines []string) error {
			env.cfgLines = lines
			return nil
		},
		GetConfig: func(key string) (string, bool) {
			value, ok := config.Parse(env.cfgLines)[key]
			return value, ok
		},
		AllConfig: func() (map[string]string, error) {
			return config.Parse(env.cfgLines), nil
		},

		Printf: func(format string, args ...any) (int, error) {
			s := fmt.Sprintf(format, args...)
			env.out.WriteString(s)
			return len(s), nil
		},

		Now:             func() time.Time { return env.now },
		NewInvocationID: func() string { return "test-invocation" },
		HistoryLimit:    func() int { return 50 },
	}

	return env
}

func (env *testEnv) addUnit(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join(env.unitsDir, name+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// openStore opens the test database for assertions after a handler ran.
func (env *testEnv) openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(env.dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func (env *testEnv) output() string {
	return env.out.String()
}
