// Package units loads and validates unit files. A unit file is a small
// YAML document describing one named service; the file name (minus the
// .yaml extension) must match the declared name.
package units

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unit is one parsed unit file.
type Unit struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Exec        string   `yaml:"exec"`
	Wants       []string `yaml:"wants"`

	// EnabledByDefault controls the state a unit starts in before any
	// enable/disable was recorded for it.
	EnabledByDefault bool `yaml:"enabled"`
}

// Parse decodes a single unit document and validates it.
func Parse(data []byte) (Unit, error) {
	var u Unit
	if err := yaml.Unmarshal(data, &u); err != nil {
		return Unit{}, fmt.Errorf("parse unit: %w", err)
	}
	if err := u.Validate(); err != nil {
		return Unit{}, err
	}
	return u, nil
}

// Validate checks the fields a unit must carry.
func (u Unit) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("unit has no name")
	}
	if strings.ContainsAny(u.Name, " \t/\\") {
		return fmt.Errorf("unit name %q contains invalid characters", u.Name)
	}
	if strings.TrimSpace(u.Exec) == "" {
		return fmt.Errorf("unit %q has no exec command", u.Name)
	}
	for _, w := range u.Wants {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("unit %q wants an empty unit name", u.Name)
		}
	}
	return nil
}
