package config

import "strings"

// Parse turns config file lines into a key/value map. Blank lines and
// comment lines are skipped; values may be double-quoted.
func Parse(lines []string) map[string]string {
	cfg := make(map[string]string)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"`)

		if key != "" {
			cfg[key] = value
		}
	}

	return cfg
}

// Set updates or appends key=value in the given lines, preserving
// comments and ordering. Returns the new lines and whether the key
// already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}
	entry := key + "=" + value

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		existing, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(existing) == key {
			lines[i] = entry
			return lines, true
		}
	}

	return append(lines, entry), false
}

// Unset removes a key from the given lines. Returns the new lines and
// whether the key was present.
func Unset(lines []string, key string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		existing, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(existing) == key {
			return append(lines[:i], lines[i+1:]...), true
		}
	}

	return lines, false
}
