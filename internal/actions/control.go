package actions

import (
	"github.com/unitctl-tools/cli/internal/log"
	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/ui/style"
	"github.com/unitctl-tools/cli/internal/units"
	"github.com/unitctl-tools/cli/internal/usage"
)

// Control handles the start, stop and restart verbs; args[0] carries the
// operation name.
func Control(args []string) error {
	return control(args, DefaultDeps())
}

// control applies a start/stop/restart operation (args[0]) to every unit
// named by the trailing arguments. Unknown units are reported but do not
// stop the remaining units from being processed; the first unknown name
// decides the returned error.
func control(args []string, deps Deps) error {
	op := args[0]

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
	active := op != "stop"

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

		if err := s.SetActive(name, active, now); err != nil {
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
		_, _ = deps.Printf("%s %s\n", style.Success(pastTense(op)), name)
	}

	if firstUnknown != "" {
		return usage.UnknownUnit(firstUnknown)
	}
	return nil
}

func pastTense(op string) string {
	switch op {
	case "start":
		return "started"
	case "stop":
		return "stopped"
	case "restart":
		return "restarted"
	default:
		return op
	}
}
