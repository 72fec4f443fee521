package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// rootsDiffer compares the device and inode of /proc/1/root against /.
// Inside a chroot the two resolve to different filesystem objects.
func rootsDiffer() (bool, error) {
	var pid1Root, selfRoot unix.Stat_t

	if err := unix.Stat("/proc/1/root", &pid1Root); err != nil {
		return false, fmt.Errorf("stat /proc/1/root: %w", err)
	}
	if err := unix.Stat("/", &selfRoot); err != nil {
		return false, fmt.Errorf("stat /: %w", err)
	}

	return pid1Root.Dev != selfRoot.Dev || pid1Root.Ino != selfRoot.Ino, nil
}
