package verbs

// RunningInChrootOrOffline decides whether online-only verbs should be
// skipped. The UNITCTL_OFFLINE variable is consulted first so external
// processes (image builds, package scripts) can force the behavior either
// way; only when it is unset or unparseable does the chroot probe run.
func RunningInChrootOrOffline() bool {
	return runningInChrootOrOffline(DefaultDeps())
}

func runningInChrootOrOffline(deps Deps) bool {
	offline, err := deps.GetenvBool(OfflineEnv)
	if err != nil {
		// Unset and unparseable alike: note it and fall through.
		deps.Debugf("parsing %s: %v", OfflineEnv, err)
	} else {
		// An explicit false short-circuits the chroot probe too.
		return offline
	}

	inChroot, err := deps.InChroot()
	if err != nil {
		deps.Debugf("chroot detection failed: %v", err)
	} else if inChroot {
		return true
	}

	return false
}
