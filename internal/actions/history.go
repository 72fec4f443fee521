package actions

import (
	"fmt"

	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/ui/style"
)

// History prints the invocation journal, newest first. An optional
// trailing argument narrows it to one unit.
func History(args []string) error {
	return history(args, DefaultDeps())
}

func history(args []string, deps Deps) error {
	events, err := loadHistory(args, deps)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		_, _ = deps.Printf("%s\n", style.Muted("journal is empty"))
		return nil
	}

	for _, e := range events {
		_, _ = deps.Printf("%s\n", formatEvent(e))
	}
	return nil
}

func loadHistory(args []string, deps Deps) ([]store.UnitEvent, error) {
	s, err := deps.OpenStore(deps.DBPath())
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	filter := store.EventFilter{Limit: deps.HistoryLimit()}
	if len(args) > 1 {
		filter.Unit = args[1]
	}

	return s.ListEvents(filter)
}

func formatEvent(e store.UnitEvent) string {
	outcome := e.Outcome.String()
	switch e.Outcome {
	case store.OutcomeApplied:
		outcome = style.Success(outcome)
	case store.OutcomeFailed:
		outcome = style.Error(outcome)
	case store.OutcomeSkipped:
		outcome = style.Warning(outcome)
	}

	line := fmt.Sprintf("%s  %-8s %-16s %s",
		style.Muted(e.Timestamp.Local().Format("2006-01-02 15:04:05")),
		e.Operation,
		e.Unit,
		outcome,
	)
	if e.Detail != "" {
		line += "  " + style.Muted(e.Detail)
	}
	return line
}
