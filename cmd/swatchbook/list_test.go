package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommand_TableOutput(t *testing.T) {
	t.Parallel()

	theme := setupTheme(t)

	stdout, _, err := executeCommand("list", "--path", theme, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "SLUG")
	require.Contains(t, stdout, "dusk")
	require.Contains(t, stdout, "Ocean")
	require.Contains(t, stdout, "theme")
}

func TestListCommand_JSONOutput(t *testing.T) {
	t.Parallel()

	theme := setupTheme(t)

	stdout, _, err := executeCommand("list", "--json", "--path", theme, "--log-level", "error")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 2, payload.Count)
	require.Equal(t, "dusk", payload.Variations[0].Slug)
	require.Equal(t, []string{"#101020", "#f5f5f5"}, payload.Variations[0].Colours)
	require.Equal(t, "ocean", payload.Variations[1].Slug)
	require.False(t, payload.Variations[1].Current)
}

func TestListCommand_EmptyTheme(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("list", "--path", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "No style variations found.")
}

func TestListCommand_MissingDirectoryFails(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent")

	_, _, err := executeCommand("list", "--path", missing, "--log-level", "error")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), "Could not load variations")
}

func TestRootCommandFallsBackToListWithoutTerminal(t *testing.T) {
	t.Parallel()

	theme := setupTheme(t)

	stdout, _, err := executeCommand("--path", theme, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "SLUG")
	require.Contains(t, stdout, "ocean")
}
