package actions

import (
	"sort"

	"github.com/unitctl-tools/cli/internal/config"
	"github.com/unitctl-tools/cli/internal/usage"
)

// Configure handles the config verb. args[1] selects the subcommand:
// get <key>, set <key> <value>, unset <key>, or list.
func Configure(args []string) error {
	return configure(args, DefaultDeps())
}

func configure(args []string, deps Deps) error {
	sub := args[1]
	rest := args[2:]

	switch sub {
	case "get":
		if err := wantArgs(rest, 1, "config get"); err != nil {
			return err
		}
		value, found := deps.GetConfig(rest[0])
		if !found {
			return usage.UnknownConfigKey(rest[0])
		}
		_, _ = deps.Printf("%s\n", value)
		return nil

	case "set":
		if err := wantArgs(rest, 2, "config set"); err != nil {
			return err
		}
		lines, err := deps.ReadConfig()
		if err != nil {
			return err
		}
		lines, updated := config.Set(lines, rest[0], rest[1])
		if err := deps.WriteConfig(lines); err != nil {
			return err
		}
		action := "added"
		if updated {
			action = "updated"
		}
		_, _ = deps.Printf("%s %s=%s\n", action, rest[0], rest[1])
		return nil

	case "unset":
		if err := wantArgs(rest, 1, "config unset"); err != nil {
			return err
		}
		lines, err := deps.ReadConfig()
		if err != nil {
			return err
		}
		lines, removed := config.Unset(lines, rest[0])
		if !removed {
			return usage.UnknownConfigKey(rest[0])
		}
		if err := deps.WriteConfig(lines); err != nil {
			return err
		}
		_, _ = deps.Printf("unset %s\n", rest[0])
		return nil

	case "list":
		if err := wantArgs(rest, 0, "config list"); err != nil {
			return err
		}
		all, err := deps.AllConfig()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			_, _ = deps.Printf("%s=%s\n", key, all[key])
		}
		return nil

	default:
		return usage.UnknownOperation("config " + sub)
	}
}

// wantArgs checks that a subcommand got exactly n trailing arguments.
// The table bounds the whole verb; per-subcommand counts live here.
func wantArgs(rest []string, n int, what string) *usage.Error {
	if len(rest) < n {
		return usage.TooFewArguments(what)
	}
	if len(rest) > n {
		return usage.TooManyArguments(what)
	}
	return nil
}
