package units

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unitctl-tools/cli/internal/log"
)

// Load reads every *.yaml file in dir and returns the parsed units sorted
// by name. A missing directory yields an empty result, not an error; a
// unit file that fails to parse is an error naming the file.
func Load(dir string) ([]Unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("units: directory %s does not exist", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("read units directory: %w", err)
	}

	var loaded []Unit
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		u, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		stem := strings.TrimSuffix(entry.Name(), ".yaml")
		if u.Name != stem {
			return nil, fmt.Errorf("%s: declared name %q does not match file name", entry.Name(), u.Name)
		}

		loaded = append(loaded, u)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Name < loaded[j].Name
	})

	log.Debug("units: loaded %d unit(s) from %s", len(loaded), dir)
	return loaded, nil
}

// Find returns the unit with the given name from a loaded set.
func Find(loaded []Unit, name string) (Unit, bool) {
	for _, u := range loaded {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// FilePath returns the path a unit's file would live at inside dir.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name+".yaml")
}
