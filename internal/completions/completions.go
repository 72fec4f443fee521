// Package completions generates shell completion scripts for the flat
// verb table.
package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Shell identifies a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell validates a shell name.
func ParseShell(s string) (Shell, error) {
	switch Shell(s) {
	case ShellBash, ShellZsh, ShellFish:
		return Shell(s), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected bash, zsh or fish)", s)
	}
}

// BinaryName returns the name completions are generated for, derived
// from the running executable.
func BinaryName() string {
	if exe, err := os.Executable(); err == nil {
		if name := filepath.Base(exe); name != "" && name != "." {
			return name
		}
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "unitctl"
}

// Print writes the completion script for the given shell and verb names.
func Print(w io.Writer, shell Shell, binary string, verbNames []string) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(binary, verbNames)
	case ShellZsh:
		script = generateZsh(binary, verbNames)
	case ShellFish:
		script = generateFish(binary, verbNames)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateBash(binary string, verbNames []string) string {
	fn := "_" + sanitize(binary) + "_completions"
	return fmt.Sprintf(`%s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    if [ "$COMP_CWORD" -eq 1 ]; then
        COMPREPLY=($(compgen -W "%s" -- "$cur"))
    fi
}
complete -F %s %s
`, fn, strings.Join(verbNames, " "), fn, binary)
}

func generateZsh(binary string, verbNames []string) string {
	fn := "_" + sanitize(binary)
	return fmt.Sprintf(`#compdef %s
%s() {
    if (( CURRENT == 2 )); then
        compadd %s
    fi
}
compdef %s %s
`, binary, fn, strings.Join(verbNames, " "), fn, binary)
}

func generateFish(binary string, verbNames []string) string {
	var b strings.Builder
	for _, name := range verbNames {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s\n", binary, name)
	}
	return b.String()
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
