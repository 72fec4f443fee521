package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitctl-tools/cli/internal/usage"
)

func TestReport_UsageError(t *testing.T) {
	require.Equal(t, 2, report(usage.UnknownOperation("frobnicate")))
	require.Equal(t, 1, report(usage.UnknownUnit("web")))
}

func TestReport_PlainError(t *testing.T) {
	require.Equal(t, 1, report(errors.New("boom")))
}

func TestRun_UnknownFlag(t *testing.T) {
	require.Equal(t, 2, run([]string{"--frobnicate"}))
}
