// Package gitrepo reads style variations from a theme kept in a git
// repository. The repository is cloned shallowly on first use and then read
// like a local theme directory.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/swatchbook/internal/logger"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/dir"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// Source clones URL at Ref into Dir and serves the variations found there.
type Source struct {
	URL string
	// Ref is a branch name; empty means the remote HEAD.
	Ref string
	// Dir is the clone destination. When empty a temporary directory is used.
	Dir string
	// Depth limits history; New sets 1. Zero fetches full history.
	Depth int
	Log   *logger.Logger

	once  sync.Once
	local *dir.Source
	err   error
}

var (
	_ ports.VariationSource = (*Source)(nil)
	_ ports.ApplySink       = (*Source)(nil)
)

// New creates a Source. The clone happens on the first fetch.
func New(url, ref, destination string, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	return &Source{URL: url, Ref: ref, Dir: destination, Depth: 1, Log: log}
}

// FetchVariations clones the repository if needed and lists its variations.
func (s *Source) FetchVariations(ctx context.Context) ([]variation.Variation, error) {
	local, err := s.checkout(ctx)
	if err != nil {
		return nil, err
	}
	return local.FetchVariations(ctx)
}

// FetchCurrent reads the current slug from the clone's state directory.
func (s *Source) FetchCurrent(ctx context.Context) (string, error) {
	local, err := s.checkout(ctx)
	if err != nil {
		return "", err
	}
	return local.FetchCurrent(ctx)
}

// Apply writes v into the clone's state directory, cloning first if no fetch
// has happened yet.
func (s *Source) Apply(ctx context.Context, v variation.Variation) (ports.ApplyResult, error) {
	local, err := s.checkout(ctx)
	if err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), err)
	}
	return dir.NewSink(local.Root).Apply(ctx, v)
}

// Path returns the clone location once a fetch has succeeded.
func (s *Source) Path() string {
	if s.local == nil {
		return ""
	}
	return s.local.Root
}

func (s *Source) checkout(ctx context.Context) (*dir.Source, error) {
	s.once.Do(func() {
		s.local, s.err = s.clone(ctx)
	})
	return s.local, s.err
}

func (s *Source) clone(ctx context.Context) (*dir.Source, error) {
	if s.URL == "" {
		return nil, swatcherrors.NewFetchError("git", errors.New("repository url is empty"))
	}

	destination := s.Dir
	if destination == "" {
		tmp, err := os.MkdirTemp("", "swatchbook-theme-*")
		if err != nil {
			return nil, swatcherrors.NewFetchError(s.URL, err)
		}
		destination = tmp
	}
	log := s.Log.WithFields(map[string]any{"url": s.URL, "destination": destination})

	if reusable, err := existingClone(destination, s.URL); err != nil {
		return nil, swatcherrors.NewFetchError(s.URL, err)
	} else if reusable {
		log.Debug("reusing existing clone")
		return dir.New(destination, s.Log), nil
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return nil, swatcherrors.NewFetchError(s.URL, fmt.Errorf("create destination: %w", err))
	}

	opts := &git.CloneOptions{URL: s.URL, Depth: s.Depth}
	if s.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.Ref)
		opts.SingleBranch = true
	}

	log.Info("cloning theme repository")
	if _, err := git.PlainCloneContext(ctx, destination, false, opts); err != nil {
		return nil, swatcherrors.NewFetchError(s.URL, fmt.Errorf("clone repository: %w", err))
	}
	return dir.New(destination, s.Log), nil
}

// existingClone reports whether destination already holds a clone of url.
// A non-empty directory that is not such a clone is an error.
func existingClone(destination, url string) (bool, error) {
	entries, err := os.ReadDir(destination)
	if os.IsNotExist(err) || (err == nil && len(entries) == 0) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot access destination: %w", err)
	}

	repo, err := git.PlainOpen(destination)
	if err != nil {
		return false, fmt.Errorf("destination %s exists but is not a git repository", destination)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return false, fmt.Errorf("destination %s has no origin remote: %w", destination, err)
	}
	if urls := remote.Config().URLs; len(urls) > 0 && urls[0] != url {
		return false, fmt.Errorf("remote URL is %s (expected %s)", urls[0], url)
	}
	return true, nil
}
