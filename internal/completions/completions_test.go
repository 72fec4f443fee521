package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShell(t *testing.T) {
	for _, s := range []string{"bash", "zsh", "fish"} {
		shell, err := ParseShell(s)
		require.NoError(t, err)
		require.Equal(t, Shell(s), shell)
	}

	_, err := ParseShell("powershell")
	require.Error(t, err)
	require.Contains(t, err.Error(), "powershell")
}

func TestPrint_Bash(t *testing.T) {
	var b strings.Builder
	err := Print(&b, ShellBash, "unitctl", []string{"start", "stop", "status"})
	require.NoError(t, err)

	script := b.String()
	require.Contains(t, script, "complete -F _unitctl_completions unitctl")
	require.Contains(t, script, "start stop status")
}

func TestPrint_Zsh(t *testing.T) {
	var b strings.Builder
	err := Print(&b, ShellZsh, "unitctl", []string{"start", "stop"})
	require.NoError(t, err)

	script := b.String()
	require.Contains(t, script, "#compdef unitctl")
	require.Contains(t, script, "compadd start stop")
}

func TestPrint_Fish(t *testing.T) {
	var b strings.Builder
	err := Print(&b, ShellFish, "unitctl", []string{"start", "stop"})
	require.NoError(t, err)

	script := b.String()
	require.Contains(t, script, "complete -c unitctl")
	require.Equal(t, 2, strings.Count(script, "\n"))
}

func TestPrint_UnsupportedShell(t *testing.T) {
	var b strings.Builder
	require.Error(t, Print(&b, Shell("tcsh"), "unitctl", nil))
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "unitctl_dev", sanitize("unitctl-dev"))
}
