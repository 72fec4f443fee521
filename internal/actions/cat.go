package actions

import (
	"github.com/unitctl-tools/cli/internal/ui/style"
	"github.com/unitctl-tools/cli/internal/units"
	"github.com/unitctl-tools/cli/internal/usage"
)

// Cat prints the raw unit file for one unit.
func Cat(args []string) error {
	return cat(args, DefaultDeps())
}

func cat(args []string, deps Deps) error {
	name := args[1]
	dir := deps.UnitsDir()

	loaded, err := deps.LoadUnits(dir)
	if err != nil {
		return err
	}
	if _, ok := units.Find(loaded, name); !ok {
		return usage.UnknownUnit(name)
	}

	path := units.FilePath(dir, name)
	data, err := deps.ReadFile(path)
	if err != nil {
		return err
	}

	_, _ = deps.Printf("%s\n", style.Info("# "+path))
	_, _ = deps.Printf("%s", string(data))
	return nil
}
