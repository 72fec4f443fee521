package system

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotSet is returned by GetenvBool when the variable is absent from the
// environment. Callers use it to tell "unset" apart from "unparseable".
var ErrNotSet = errors.New("environment variable not set")

// GetenvBool reads an environment variable as a boolean.
// Accepted true values: 1, yes, y, true, t, on.
// Accepted false values: 0, no, n, false, f, off.
// Returns ErrNotSet when the variable is absent and a parse error when the
// value matches neither set.
func GetenvBool(name string) (bool, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return false, fmt.Errorf("%s: %w", name, ErrNotSet)
	}
	return ParseBool(value)
}

// ParseBool parses a boolean the same way GetenvBool does.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "yes", "y", "true", "t", "on":
		return true, nil
	case "0", "no", "n", "false", "f", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", value)
	}
}
