package system

import (
	"os"

	"github.com/unitctl-tools/cli/internal/usage"
)

// MustBeRoot returns nil when the process runs with an effective UID of 0
// and a usage error otherwise. The verb name is included in the message so
// the user knows which operation needed the privilege.
func MustBeRoot(verb string) error {
	if os.Geteuid() == 0 {
		return nil
	}
	return usage.NotRoot(verb)
}
