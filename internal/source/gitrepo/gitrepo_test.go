package gitrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

func initThemeRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "styles"), 0o755))
	doc := `{"title": "Midnight", "settings": {"color": {"palette": [{"slug": "base", "color": "#000"}]}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles", "midnight.json"), []byte(doc), 0o644))
	_, err = wt.Add("styles/midnight.json")
	require.NoError(t, err)

	_, err = wt.Commit("add midnight", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Swatchbook",
			Email: "swatchbook@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

// newLocal clones with full history; shallow fetches are not served by every
// local transport.
func newLocal(origin, dest string) *Source {
	src := New(origin, "", dest, nil)
	src.Depth = 0
	return src
}

func TestNewDefaultsToShallowClone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, New("https://example.com/theme.git", "main", "", nil).Depth)
}

func TestFetchVariationsClonesRepository(t *testing.T) {
	t.Parallel()

	origin := initThemeRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	src := newLocal(origin, dest)
	vs, err := src.FetchVariations(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "Midnight", vs[0].Title)
	assert.Equal(t, dest, src.Path())

	current, err := src.FetchCurrent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, current)

	_, err = os.Stat(filepath.Join(dest, "styles", "midnight.json"))
	require.NoError(t, err)
}

func TestFetchVariationsReusesExistingClone(t *testing.T) {
	t.Parallel()

	origin := initThemeRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")

	_, err := newLocal(origin, dest).FetchVariations(context.Background())
	require.NoError(t, err)

	vs, err := newLocal(origin, dest).FetchVariations(context.Background())
	require.NoError(t, err)
	assert.Len(t, vs, 1)
}

func TestFetchVariationsRejectsForeignDirectory(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "README.md"), []byte("not a repo"), 0o644))

	_, err := newLocal(initThemeRepo(t), dest).FetchVariations(context.Background())
	var fetchErr *swatcherrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestFetchVariationsRequiresURL(t *testing.T) {
	t.Parallel()

	_, err := New("", "", t.TempDir(), nil).FetchVariations(context.Background())
	require.Error(t, err)
}

func TestApplyWritesIntoClone(t *testing.T) {
	t.Parallel()

	origin := initThemeRepo(t)
	dest := filepath.Join(t.TempDir(), "clone")
	src := newLocal(origin, dest)

	vs, err := src.FetchVariations(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 1)

	result, err := src.Apply(context.Background(), vs[0])
	require.NoError(t, err)
	assert.True(t, result.Success)

	current, err := src.FetchCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "midnight", current)
}
