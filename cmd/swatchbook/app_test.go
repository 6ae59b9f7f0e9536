package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/config"
	"github.com/alexisbeaulieu97/swatchbook/internal/logger"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/dir"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/gitrepo"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/rest"
	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swatchbook.yaml")
	contents := "source:\n  type: rest\n  url: https://example.com/wp-json/styles\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := loadConfig(&rootFlags{configPath: path, logLevel: "debug"})
	require.NoError(t, err)
	require.Equal(t, config.SourceREST, cfg.Source.Type)
	require.Equal(t, "debug", cfg.Log.Level)

	cfg, err = loadConfig(&rootFlags{configPath: path, sourceType: "dir", path: "/srv/theme"})
	require.NoError(t, err)
	require.Equal(t, config.SourceDir, cfg.Source.Type)
	require.Equal(t, "/srv/theme", cfg.Source.Path)
}

func TestLoadConfigValidatesMergedResult(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(&rootFlags{sourceType: "rest", url: "not a url"})
	var valErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "source.url", valErr.Field)
}

func TestNewBackendSelectsImplementation(t *testing.T) {
	t.Parallel()

	log := logger.Nop()

	src, sink, err := newBackend(config.SourceConfig{Type: config.SourceDir, Path: "."}, log)
	require.NoError(t, err)
	require.IsType(t, &dir.Source{}, src)
	require.IsType(t, &dir.Sink{}, sink)

	src, sink, err = newBackend(config.SourceConfig{Type: config.SourceGit, URL: "https://example.com/theme.git", Path: "."}, log)
	require.NoError(t, err)
	repo, ok := src.(*gitrepo.Source)
	require.True(t, ok)
	require.Empty(t, repo.Dir)
	require.Same(t, repo, sink)

	src, sink, err = newBackend(config.SourceConfig{Type: config.SourceREST, URL: "https://example.com"}, log)
	require.NoError(t, err)
	require.IsType(t, &rest.Client{}, src)
	require.Same(t, src, sink)

	_, _, err = newBackend(config.SourceConfig{Type: "ftp"}, log)
	require.Error(t, err)
}

func TestDescribeErrorAddsSuggestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"parse", swatcherrors.NewParseError("swatchbook.yaml", 3, errors.New("bad indent")), "check the YAML syntax in swatchbook.yaml"},
		{"validation", swatcherrors.NewValidationError("source.url", "missing", nil), `fix the "source.url" setting`},
		{"fetch", swatcherrors.NewFetchError("https://example.com", errors.New("timeout")), "check that https://example.com is reachable"},
		{"apply", swatcherrors.NewApplyError("ocean", errors.New("denied")), "accepts writes"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Contains(t, describeError(tc.err), tc.want)
		})
	}
}
