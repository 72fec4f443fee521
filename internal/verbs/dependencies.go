package verbs

import (
	"github.com/unitctl-tools/cli/internal/log"
	"github.com/unitctl-tools/cli/internal/system"
)

// OfflineEnv forces offline behavior regardless of the chroot probe.
// Tri-state: a true value forces the gate on, a false value forces it
// off, unset or unparseable falls through to the chroot probe.
const OfflineEnv = "UNITCTL_OFFLINE"

// Deps holds the external collaborators of the dispatcher so tests can
// substitute them.
type Deps struct {
	GetenvBool func(name string) (bool, error)
	InChroot   func() (bool, error)
	CheckRoot  func(verb string) error

	Debugf func(format string, args ...any)
	Infof  func(format string, args ...any)
	Errorf func(format string, args ...any)
}

// DefaultDeps returns the production collaborators.
func DefaultDeps() Deps {
	return Deps{
		GetenvBool: system.GetenvBool,
		InChroot:   system.RunningInChroot,
		CheckRoot:  system.MustBeRoot,

		Debugf: log.Debug,
		Infof:  log.Info,
		Errorf: log.Error,
	}
}
