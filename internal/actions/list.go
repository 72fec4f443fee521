package actions

import (
	"github.com/unitctl-tools/cli/internal/ui/style"
)

// List prints every unit file found in the units directory.
func List(args []string) error {
	return list(args, DefaultDeps())
}

func list(_ []string, deps Deps) error {
	dir := deps.UnitsDir()
	loaded, err := deps.LoadUnits(dir)
	if err != nil {
		return err
	}

	if len(loaded) == 0 {
		_, _ = deps.Printf("%s\n", style.Muted("no unit files in "+dir))
		return nil
	}

	for _, u := range loaded {
		line := u.Name
		if u.Description != "" {
			line += "  " + style.Muted(u.Description)
		}
		_, _ = deps.Printf("%s\n", line)
	}
	_, _ = deps.Printf("\n%s\n", style.Muted(dir))

	return nil
}
