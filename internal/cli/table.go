// Package cli assembles the verb table and splits raw process arguments
// into positional tokens and flags.
package cli

import (
	"os"

	"github.com/unitctl-tools/cli/internal/actions"
	"github.com/unitctl-tools/cli/internal/completions"
	"github.com/unitctl-tools/cli/internal/verbs"
)

// Options adjusts how handlers behave for this invocation.
type Options struct {
	// Interactive selects the full-screen journal viewer for history.
	Interactive bool
}

// Table returns the verb table. Argument bounds count the verb name
// itself, so a verb taking at least one unit name has MinArgs 2.
func Table(opts Options) []verbs.Verb {
	history := actions.History
	if opts.Interactive {
		history = actions.HistoryInteractive
	}

	table := []verbs.Verb{
		{Name: "status", MinArgs: 1, MaxArgs: verbs.Any, Flags: verbs.Default, Run: actions.Status},
		{Name: "list", MinArgs: 1, MaxArgs: 1, Run: actions.List},
		{Name: "cat", MinArgs: 2, MaxArgs: 2, Run: actions.Cat},
		{Name: "start", MinArgs: 2, MaxArgs: verbs.Any, Flags: verbs.OnlineOnly, Run: actions.Control},
		{Name: "stop", MinArgs: 2, MaxArgs: verbs.Any, Flags: verbs.OnlineOnly, Run: actions.Control},
		{Name: "restart", MinArgs: 2, MaxArgs: verbs.Any, Flags: verbs.OnlineOnly, Run: actions.Control},
		{Name: "enable", MinArgs: 2, MaxArgs: verbs.Any, Flags: verbs.MustBeRoot, Run: actions.Enablement},
		{Name: "disable", MinArgs: 2, MaxArgs: verbs.Any, Flags: verbs.MustBeRoot, Run: actions.Enablement},
		{Name: "history", MinArgs: 1, MaxArgs: 2, Run: history},
		{Name: "config", MinArgs: 2, MaxArgs: 4, Run: actions.Configure},
	}

	names := make([]string, 0, len(table)+1)
	for _, v := range table {
		names = append(names, v.Name)
	}
	names = append(names, "completions")

	return append(table, verbs.Verb{
		Name:    "completions",
		MinArgs: 2,
		MaxArgs: 2,
		Run: func(args []string) error {
			shell, err := completions.ParseShell(args[1])
			if err != nil {
				return err
			}
			return completions.Print(os.Stdout, shell, completions.BinaryName(), names)
		},
	})
}
