package system

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunningInChroot_IgnoreOverride(t *testing.T) {
	t.Setenv(IgnoreChrootEnv, "1")

	inChroot, err := RunningInChroot()
	require.NoError(t, err)
	require.False(t, inChroot)
}

func TestRunningInChroot_IgnoreOverrideFalse(t *testing.T) {
	// A false override must not force the result; the probe still runs.
	t.Setenv(IgnoreChrootEnv, "0")

	// The probe outcome depends on the host; only the error path of a
	// missing /proc is environment-specific, so accept either result.
	_, _ = RunningInChroot()
}
