package config

import (
	"github.com/unitctl-tools/cli/internal/paths"
)

// Default configuration values (in code, not persisted)
var Defaults = map[string]func() string{
	"log_level":     func() string { return "warn" },
	"enable_log":    func() string { return "true" },
	"units_dir":     func() string { return paths.UnitsDir() },
	"db_path":       func() string { return paths.DBPath() },
	"history_limit": func() string { return "50" },
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg := Parse(lines)

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil // defaults still apply when the file is unreadable
	}

	for key, value := range Parse(lines) {
		result[key] = value
	}

	return result, nil
}
