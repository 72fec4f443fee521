package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/usage"
)

func TestStatus_AllUnits(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\ndescription: frontend\nexec: /usr/bin/webd\n")
	env.addUnit(t, "db", "name: db\nexec: /usr/bin/dbd\nenabled: true\n")

	require.NoError(t, control([]string{"start", "web"}, env.deps))

	require.NoError(t, status([]string{"status"}, env.deps))

	out := env.output()
	require.Contains(t, out, "UNIT")
	require.Contains(t, out, "web")
	require.Contains(t, out, "frontend")
	require.Contains(t, out, "db")
	require.Contains(t, out, "active")
}

func TestStatus_EnabledDefaultFromUnitFile(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "db", "name: db\nexec: /usr/bin/dbd\nenabled: true\n")

	require.NoError(t, status([]string{"status", "db"}, env.deps))
	require.Contains(t, env.output(), "enabled")
}

func TestStatus_RecordedEnablementWins(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "db", "name: db\nexec: /usr/bin/dbd\nenabled: true\n")

	require.NoError(t, enablement([]string{"disable", "db"}, env.deps))
	env.out.Reset()

	require.NoError(t, status([]string{"status", "db"}, env.deps))
	require.Contains(t, env.output(), "disabled")
}

func TestStatus_UnknownUnit(t *testing.T) {
	env := newTestEnv(t)

	err := status([]string{"status", "ghost"}, env.deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownUnit, ue.Kind)
}

func TestStatus_NoUnits(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, status([]string{"status"}, env.deps))
	require.Contains(t, env.output(), "no units found")
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\ndescription: frontend\nexec: /usr/bin/webd\n")

	require.NoError(t, list([]string{"list"}, env.deps))
	out := env.output()
	require.Contains(t, out, "web")
	require.Contains(t, out, env.unitsDir)
}

func TestList_Empty(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, list([]string{"list"}, env.deps))
	require.Contains(t, env.output(), "no unit files")
}

func TestCat(t *testing.T) {
	env := newTestEnv(t)
	content := "name: web\nexec: /usr/bin/webd\n"
	env.addUnit(t, "web", content)

	require.NoError(t, cat([]string{"cat", "web"}, env.deps))
	require.Contains(t, env.output(), content)
}

func TestCat_UnknownUnit_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	err := cat([]string{"cat", "ghost"}, env.deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownUnit, ue.Kind)
}
