package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/usage"
)

func TestControl_Start(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\nexec: /usr/bin/webd\n")

	err := control([]string{"start", "web"}, env.deps)
	require.NoError(t, err)
	require.Contains(t, env.output(), "started web")

	s := env.openStore(t)
	state, found, err := s.GetState("web")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, state.Active)

	events, err := s.ListEvents(store.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "start", events[0].Operation)
	require.Equal(t, store.OutcomeApplied, events[0].Outcome)
	require.Equal(t, "test-invocation", events[0].InvocationID)
}

func TestControl_Stop(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\nexec: /usr/bin/webd\n")

	require.NoError(t, control([]string{"start", "web"}, env.deps))
	require.NoError(t, control([]string{"stop", "web"}, env.deps))

	s := env.openStore(t)
	state, _, err := s.GetState("web")
	require.NoError(t, err)
	require.False(t, state.Active)
}

func TestControl_Restart_LeavesActive(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\nexec: /usr/bin/webd\n")

	require.NoError(t, control([]string{"restart", "web"}, env.deps))

	s := env.openStore(t)
	state, _, err := s.GetState("web")
	require.NoError(t, err)
	require.True(t, state.Active)
	require.Contains(t, env.output(), "restarted web")
}

func TestControl_UnknownUnit_ContinuesWithRest(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "web", "name: web\nexec: /usr/bin/webd\n")

	err := control([]string{"start", "ghost", "web"}, env.deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownUnit, ue.Kind)
	require.Contains(t, ue.Message, "ghost")

	// The known unit was still processed
	s := env.openStore(t)
	state, found, err := s.GetState("web")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, state.Active)

	// Both attempts were journaled
	events, err := s.ListEvents(store.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestEnablement_EnableDisable(t *testing.T) {
	env := newTestEnv(t)
	env.addUnit(t, "db", "name: db\nexec: /usr/bin/dbd\n")

	require.NoError(t, enablement([]string{"enable", "db"}, env.deps))
	require.Contains(t, env.output(), "enabled db")

	s := env.openStore(t)
	state, _, err := s.GetState("db")
	require.NoError(t, err)
	require.True(t, state.Enabled.Valid)
	require.True(t, state.Enabled.Bool)

	require.NoError(t, enablement([]string{"disable", "db"}, env.deps))

	s2 := env.openStore(t)
	state, _, err = s2.GetState("db")
	require.NoError(t, err)
	require.True(t, state.Enabled.Valid)
	require.False(t, state.Enabled.Bool)
}

func TestEnablement_UnknownUnit(t *testing.T) {
	env := newTestEnv(t)

	err := enablement([]string{"enable", "ghost"}, env.deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownUnit, ue.Kind)
}
