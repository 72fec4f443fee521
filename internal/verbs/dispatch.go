package verbs

import (
	"github.com/unitctl-tools/cli/internal/usage"
)

// Dispatch selects the verb named by args[0], validates the argument
// count against the matched entry, applies the offline and privilege
// gates, and invokes the handler. When args is empty the entry flagged
// Default is selected and invoked with a synthesized single-element
// argument list holding its own name.
//
// The handler's error is returned verbatim. A nil return means either
// the handler succeeded or an online-only verb was deliberately skipped
// while offline; validation failures return a *usage.Error.
func Dispatch(args []string, table []Verb) error {
	return dispatch(args, table, DefaultDeps())
}

func dispatch(args []string, table []Verb, deps Deps) error {
	// A nil or empty table, or a first entry with no handler, is a bug
	// in the caller, not a runtime condition.
	if len(table) == 0 || table[0].Run == nil {
		panic("verbs: dispatch called with an empty verb table")
	}

	named := len(args) > 0
	var name string
	if named {
		name = args[0]
	}

	var verb *Verb
	for i := range table {
		var found bool
		if named {
			found = table[i].Name == name
		} else {
			found = table[i].Flags.Has(Default)
		}
		if found {
			verb = &table[i]
			break
		}
	}

	if verb == nil {
		if named {
			deps.Errorf("unknown operation %s", name)
			return usage.UnknownOperation(name)
		}
		deps.Errorf("requires operation parameter")
		return usage.MissingOperation()
	}

	// The synthesized invocation below always carries exactly one
	// argument: the verb's own name.
	left := len(args)
	if !named {
		left = 1
	}

	if verb.MinArgs != Any && left < verb.MinArgs {
		deps.Errorf("too few arguments for %s", verb.Name)
		return usage.TooFewArguments(verb.Name)
	}

	if verb.MaxArgs != Any && left > verb.MaxArgs {
		deps.Errorf("too many arguments for %s", verb.Name)
		return usage.TooManyArguments(verb.Name)
	}

	if verb.Flags.Has(OnlineOnly) && runningInChrootOrOffline(deps) {
		deps.Infof("running in chroot, ignoring request: %s", verb.Name)
		return nil
	}

	if verb.Flags.Has(MustBeRoot) {
		if err := deps.CheckRoot(verb.Name); err != nil {
			return err
		}
	}

	if !named {
		return verb.Run([]string{verb.Name})
	}
	return verb.Run(args)
}
