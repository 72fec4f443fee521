package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "unitctl"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
//   - macOS: ~/Library/Application Support/unitctl
//   - Linux: $XDG_DATA_HOME/unitctl or ~/.local/share/unitctl
//   - Windows: %LOCALAPPDATA%\unitctl
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// UnitsDir returns the directory holding unit files. System-wide units
// live in /etc/unitctl/units on Unix; per-user units live in the app data
// directory. The per-user directory wins when it exists, so unprivileged
// use keeps working.
func UnitsDir() string {
	user := filepath.Join(AppDataDir(), "units")
	if info, err := os.Stat(user); err == nil && info.IsDir() {
		return user
	}

	if runtime.GOOS != "windows" {
		if info, err := os.Stat("/etc/unitctl/units"); err == nil && info.IsDir() {
			return "/etc/unitctl/units"
		}
	}

	return user
}

// DBPath returns the path to the state database.
func DBPath() string {
	return filepath.Join(AppLocalDataDir(), "state.db")
}

// ConfigFilePath returns the path to the user configuration file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".unitctlrc"), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/unitctl/unitctl.log
//   - Linux: $XDG_CONFIG_HOME/unitctl/unitctl.log or ~/.config/unitctl/unitctl.log
//   - Windows: %AppData%\unitctl\unitctl.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "unitctl.log")
}
