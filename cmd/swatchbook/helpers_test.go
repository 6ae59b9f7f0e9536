package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const oceanStyle = `{
	"title": "Ocean",
	"settings": {"color": {"palette": [
		{"slug": "base", "color": "#f0f8ff"},
		{"slug": "primary", "color": "#0066cc"}
	]}},
	"styles": {"css": ":root{--ink: #003;}"}
}`

const duskStyle = `title: Dusk
settings:
  color:
    palette:
      - slug: base
        color: "#101020"
      - slug: contrast
        color: "#f5f5f5"
`

func setupTheme(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	styles := filepath.Join(root, "styles")
	require.NoError(t, os.MkdirAll(styles, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(styles, "ocean.json"), []byte(oceanStyle), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(styles, "dusk.yaml"), []byte(duskStyle), 0o644))
	return root
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
