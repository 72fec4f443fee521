package cli

import "github.com/unitctl-tools/cli/internal/usage"

// knownFlags is the full set of flags any verb accepts. Flags are
// position-independent; everything else is a positional token.
var knownFlags = map[string]bool{
	"--no-color":    true,
	"--interactive": true,
	"-i":            true,
}

// SplitArgs separates raw arguments into positional tokens and flags.
// An unknown flag is an error; flag parsing stays deliberately minimal.
func SplitArgs(args []string) (tokens []string, flags []string, err error) {
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if !knownFlags[a] {
				return nil, nil, usage.InvalidFlag(a)
			}
			flags = append(flags, a)
			continue
		}
		tokens = append(tokens, a)
	}
	return tokens, flags, nil
}

// HasFlag reports whether any of the given names appears in flags.
func HasFlag(flags []string, names ...string) bool {
	for _, f := range flags {
		for _, n := range names {
			if f == n {
				return true
			}
		}
	}
	return false
}
