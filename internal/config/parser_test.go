package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	restYAML := `source:
  type: rest
  url: "https://example.com/wp-json/swatchbook/v1"
  timeout: 5s
  headers:
    Authorization: "Basic abc"
log:
  level: debug
  human: true
render:
  card_background: "rgb(250, 250, 250)"
`

	partialYAML := `log:
  level: warn
`

	invalidYAML := `source: [dir]
`

	badType := `source:
  type: ftp
`

	badColour := `render:
  card_background: "not-a-colour"
`

	missingURL := `source:
  type: git
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "rest configuration is parsed",
			contents: restYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, SourceREST, cfg.Source.Type)
				require.Equal(t, 5*time.Second, cfg.Source.Timeout)
				require.Equal(t, "Basic abc", cfg.Source.Headers["Authorization"])
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human)
				require.Equal(t, "rgb(250, 250, 250)", cfg.Render.CardBackground)
			},
		},
		{
			name:     "missing sections keep defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, SourceDir, cfg.Source.Type)
				require.Equal(t, ".", cfg.Source.Path)
				require.Equal(t, "warn", cfg.Log.Level)
				require.Equal(t, "#ffffff", cfg.Render.CardBackground)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *swatcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown source type is rejected",
			contents: badType,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "source.type", validationErr.Field)
				require.Contains(t, validationErr.Message, "source_type")
			},
		},
		{
			name:     "card background must be a colour",
			contents: badColour,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "render.card_background", validationErr.Field)
			},
		},
		{
			name:     "git source needs a url",
			contents: missingURL,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "source.url", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("log:\n  level: error\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestCloneDirNeverUsesWorkingDirectory(t *testing.T) {
	t.Parallel()

	require.Empty(t, SourceConfig{Path: "."}.CloneDir())
	require.Empty(t, SourceConfig{}.CloneDir())
	require.Equal(t, "/srv/themes", SourceConfig{Path: "/srv/themes"}.CloneDir())
}
