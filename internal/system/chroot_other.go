//go:build !linux

package system

// rootsDiffer on non-Linux platforms: there is no /proc/1/root to compare
// against, so the chroot probe always reports false.
func rootsDiffer() (bool, error) {
	return false, nil
}
