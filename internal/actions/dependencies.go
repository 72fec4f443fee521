// Package actions implements the handlers behind each unitctl verb.
// Handlers receive their collaborators through a Deps struct so tests can
// substitute them.
package actions

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/unitctl-tools/cli/internal/config"
	"github.com/unitctl-tools/cli/internal/paths"
	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/units"
)

type Deps struct {
	// units
	UnitsDir  func() string
	LoadUnits func(dir string) ([]units.Unit, error)
	ReadFile  func(path string) ([]byte, error)

	// store
	DBPath    func() string
	OpenStore func(path string) (*store.Store, error)

	// config
	ReadConfig  func() ([]string, error)
	WriteConfig func(lines []string) error
	GetConfig   func(key string) (string, bool)
	AllConfig   func() (map[string]string, error)

	// io
	Printf func(format string, args ...any) (int, error)

	// misc
	Now             func() time.Time
	NewInvocationID func() string
	HistoryLimit    func() int
}

func DefaultDeps() Deps {
	return Deps{
		UnitsDir:  configuredUnitsDir,
		LoadUnits: units.Load,
		ReadFile:  os.ReadFile,

		DBPath:    configuredDBPath,
		OpenStore: store.New,

		ReadConfig:  config.ReadLines,
		WriteConfig: config.WriteLines,
		GetConfig:   config.Get,
		AllConfig:   config.GetAll,

		Printf: fmt.Printf,

		Now:             time.Now,
		NewInvocationID: uuid.NewString,
		HistoryLimit:    configuredHistoryLimit,
	}
}

func configuredUnitsDir() string {
	if dir, ok := config.Get("units_dir"); ok && dir != "" {
		return dir
	}
	return paths.UnitsDir()
}

func configuredDBPath() string {
	if path, ok := config.Get("db_path"); ok && path != "" {
		return path
	}
	return paths.DBPath()
}

func configuredHistoryLimit() int {
	if raw, ok := config.Get("history_limit"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 50
}
