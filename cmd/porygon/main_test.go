package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/porygon/internal/cli"
	"github.com/specialistvlad/porygon/internal/setup"
	"github.com/specialistvlad/porygon/internal/step"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A syntax error makes app.NewApp panic while loading configuration.
	invalidHCL := `
		token = "secret"
		api {
	`
	filePath := filepath.Join(t.TempDir(), "porygon.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out := &bytes.Buffer{}
	runErr := run(context.Background(), out, []string{filePath})

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_PanicDuringRunIsNotRecovered(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "porygon.hcl")
	validHCL := `
		token          = "secret"
		application_id = "1"
	`
	require.NoError(t, os.WriteFile(filePath, []byte(validHCL), 0o600))

	// Registering a second step into a unique collection is a programmer
	// error and must crash the process instead of becoming an exit code.
	presence := step.NewUnique("presence", func(step.Unit) int { return 0 })
	doubleInsert := func(s *setup.Setup) *setup.Setup {
		presence.Factory(step.Unit{})
		presence.Factory(step.Unit{})
		return s
	}

	require.PanicsWithValue(t, "step: tried to insert twice into unique collection for presence", func() {
		_ = run(context.Background(), &bytes.Buffer{}, []string{filePath}, doubleInsert)
	})
}

func TestRun_MissingConfigValues(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "porygon.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(`application_id = "1"`), 0o600))

	runErr := run(context.Background(), &bytes.Buffer{}, []string{filePath})
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "bot token is required")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
