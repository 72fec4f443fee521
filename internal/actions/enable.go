package actions

import (
	"github.com/unitctl-tools/cli/internal/log"
	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/ui/style"
	"github.com/unitctl-tools/cli/internal/units"
	"github.com/unitctl-tools/cli/internal/usage"
)

// Enablement handles the enable and disable verbs; args[0] carries the
// operation name.
func Enablement(args []string) error {
	return enablement(args, DefaultDeps())
}

func enablement(args []string, deps Deps) error {
	op := args[0]
	enabled := op == "enable"

	loaded, err := deps.LoadUnits(deps.UnitsDir())
	if err != nil {
		return err
	}

	s, err := deps.OpenStore(deps.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	invocationID := deps.NewInvocationID()
	now := deps.Now()

	var firstUnknown string
	for _, name := range args[1:] {
		if _, ok := units.Find(loaded, name); !ok {
			if firstUnknown == "" {
				firstUnknown = name
			}
			log.Warn("%s: unit %s not found", op, name)
			_, _ = deps.Printf("%s %s: no such unit\n", style.Error("failed"), name)
			_ = s.InsertEvent(store.UnitEvent{
				InvocationID: invocationID,
				Unit:         name,
				Operation:    op,
				Outcome:      store.OutcomeFailed,
				Detail:       "unit not found",
				Timestamp:    now,
			})
			continue
		}

		if err := s.SetEnabled(name, enabled, now); err != nil {
			return err
		}
		if err := s.InsertEvent(store.UnitEvent{
			InvocationID: invocationID,
			Unit:         name,
			Operation:    op,
			Outcome:      store.OutcomeApplied,
			Timestamp:    now,
		}); err != nil {
			return err
		}

		log.Info("%s: %s", op, name)
		_, _ = deps.Printf("%s %s\n", style.Success(op+"d"), name)
	}

	if firstUnknown != "" {
		return usage.UnknownUnit(firstUnknown)
	}
	return nil
}
