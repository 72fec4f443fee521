package actions

import (
	"fmt"

	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/ui/style"
	"github.com/unitctl-tools/cli/internal/units"
	"github.com/unitctl-tools/cli/internal/usage"
)

// Status prints the recorded state of the named units, or of every unit
// when no names are given. It is the default verb.
func Status(args []string) error {
	return status(args, DefaultDeps())
}

func status(args []string, deps Deps) error {
	loaded, err := deps.LoadUnits(deps.UnitsDir())
	if err != nil {
		return err
	}

	s, err := deps.OpenStore(deps.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	states, err := s.ListStates()
	if err != nil {
		return err
	}

	selected := loaded
	if len(args) > 1 {
		selected = nil
		for _, name := range args[1:] {
			u, ok := units.Find(loaded, name)
			if !ok {
				return usage.UnknownUnit(name)
			}
			selected = append(selected, u)
		}
	}

	if len(selected) == 0 {
		_, _ = deps.Printf("%s\n", style.Muted("no units found"))
		return nil
	}

	_, _ = deps.Printf("%s\n", style.Header(fmt.Sprintf("%-16s %-9s %-9s %s", "UNIT", "ENABLED", "ACTIVE", "DESCRIPTION")))
	for _, u := range selected {
		state, recorded := states[u.Name]
		_, _ = deps.Printf("%-16s %s %s %s\n",
			u.Name,
			enabledColumn(u, state, recorded),
			activeColumn(state, recorded),
			u.Description,
		)
	}

	return nil
}

// enabledColumn resolves the effective enablement: a recorded enable or
// disable wins, otherwise the unit file's own default applies. Padding
// happens before styling so ANSI codes don't break column alignment.
func enabledColumn(u units.Unit, state store.UnitState, recorded bool) string {
	enabled := u.EnabledByDefault
	if recorded && state.Enabled.Valid {
		enabled = state.Enabled.Bool
	}
	if enabled {
		return style.Success(fmt.Sprintf("%-9s", "enabled"))
	}
	return style.Muted(fmt.Sprintf("%-9s", "disabled"))
}

func activeColumn(state store.UnitState, recorded bool) string {
	if recorded && state.Active {
		return style.Success(fmt.Sprintf("%-9s", "active"))
	}
	return style.Muted(fmt.Sprintf("%-9s", "inactive"))
}
