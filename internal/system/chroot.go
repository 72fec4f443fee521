package system

// IgnoreChrootEnv forces RunningInChroot to report false when set to a
// true value, mirroring the escape hatch some build environments need.
const IgnoreChrootEnv = "UNITCTL_IGNORE_CHROOT"

// RunningInChroot reports whether the process appears to run inside a
// chroot. The probe compares the identity of the process root with the
// root seen by PID 1; when they differ we are chrooted. The result is a
// tri-state: a determined bool, or an error when the probe itself failed
// (for example when /proc is not mounted).
func RunningInChroot() (bool, error) {
	ignore, err := GetenvBool(IgnoreChrootEnv)
	if err == nil && ignore {
		return false, nil
	}

	return rootsDiffer()
}
