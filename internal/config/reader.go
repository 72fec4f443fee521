package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/unitctl-tools/cli/internal/log"
	"github.com/unitctl-tools/cli/internal/paths"
)

func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// If file is new/empty, initialize with defaults
	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with the default values.
func initializeDefaults() []string {
	lines := []string{
		"# unitctl configuration",
		"# Edit values below; keys not listed here fall back to built-in defaults.",
		"",
	}

	for _, key := range []string{"log_level", "enable_log", "history_limit"} {
		value := Defaults[key]()
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		lines = append(lines, key+"="+value)
	}

	return lines
}
