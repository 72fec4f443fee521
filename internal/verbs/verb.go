// Package verbs routes a command-line invocation to the matching entry of
// a flat verb table: the first positional argument names the verb, the
// table entry bounds the argument count and carries behavioral flags, and
// the entry's handler does the actual work.
package verbs

// Any disables an argument-count bound when used as MinArgs or MaxArgs.
const Any = -1

// Flags is a set of behavioral flags for a verb.
type Flags uint8

const (
	// Default marks the verb selected when no verb name is given.
	// A well-formed table carries Default on at most one entry; the
	// first one wins otherwise.
	Default Flags = 1 << iota

	// OnlineOnly marks a verb that is skipped, as a no-op success, when
	// the process runs in a chroot or when offline mode is forced.
	OnlineOnly

	// MustBeRoot marks a verb that requires an effective UID of 0.
	MustBeRoot
)

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// RunFunc is a verb handler. args[0] is the verb name itself; the
// remaining entries are the verb's own arguments. Dependencies reach the
// handler by closure capture.
type RunFunc func(args []string) error

// Verb describes one entry of a verb table. MinArgs and MaxArgs bound
// len(args) as passed to Run, verb name included; Any disables a bound.
type Verb struct {
	Name    string
	MinArgs int
	MaxArgs int
	Flags   Flags
	Run     RunFunc
}
