// Package dir reads style variations from a theme directory on disk and
// applies them by writing the user style document next to it.
package dir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/swatchbook/internal/logger"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// Layout of a theme directory.
const (
	StylesDir      = "styles"
	ExportFile     = "export.json"
	StateDir       = ".swatchbook"
	CurrentFile    = "current"
	UserStylesFile = "user-styles.json"
)

var styleExtensions = map[string]bool{".json": true, ".yaml": true, ".yml": true}

// Source lists the variations of the theme rooted at Root.
type Source struct {
	Root string
	Log  *logger.Logger
}

var _ ports.VariationSource = (*Source)(nil)

// New creates a Source for root.
func New(root string, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	return &Source{Root: root, Log: log}
}

// FetchVariations returns the theme's styles/ documents ordered by file name,
// followed by the root export.json when present. Files that cannot be parsed
// are skipped and logged.
func (s *Source) FetchVariations(ctx context.Context) ([]variation.Variation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.Root); err != nil {
		return nil, swatcherrors.NewFetchError(s.Root, err)
	}

	files, err := s.styleFiles()
	if err != nil {
		return nil, swatcherrors.NewFetchError(s.Root, err)
	}

	var out []variation.Variation
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if v, ok := s.decode(path, variation.SourceTheme); ok {
			out = append(out, v)
		}
	}

	export := filepath.Join(s.Root, ExportFile)
	if _, err := os.Stat(export); err == nil {
		if v, ok := s.decode(export, variation.SourceExport); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Source) styleFiles() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, StylesDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !styleExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(s.Root, StylesDir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func (s *Source) decode(path string, source variation.Source) (variation.Variation, bool) {
	log := s.logger().WithFields(map[string]any{"path": path})
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(err, "read variation file failed")
		return variation.Variation{}, false
	}
	v, err := variation.DecodeThemeFile(path, data, source)
	if err != nil {
		log.Error(err, "skipping unparseable variation file")
		return variation.Variation{}, false
	}
	return v, true
}

// FetchCurrent returns the slug recorded by the last apply, or "".
func (s *Source) FetchCurrent(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(s.Root, StateDir, CurrentFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", swatcherrors.NewFetchError(s.Root, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Source) logger() *logger.Logger {
	if s.Log == nil {
		return logger.Nop()
	}
	return s.Log
}

// Sink applies a variation by writing its full config to
// <Root>/.swatchbook/user-styles.json and its slug to .swatchbook/current.
type Sink struct {
	Root string
}

var _ ports.ApplySink = (*Sink)(nil)

// NewSink creates a Sink writing under root.
func NewSink(root string) *Sink {
	return &Sink{Root: root}
}

// Apply persists v as the active user style.
func (s *Sink) Apply(ctx context.Context, v variation.Variation) (ports.ApplyResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ApplyResult{}, err
	}
	stateDir := filepath.Join(s.Root, StateDir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), err)
	}

	raw := v.Config.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), fmt.Errorf("encode config: %w", err))
	}

	stylesPath := filepath.Join(stateDir, UserStylesFile)
	if err := writeFileAtomic(stylesPath, append(data, '\n')); err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), err)
	}
	if err := writeFileAtomic(filepath.Join(stateDir, CurrentFile), []byte(v.Key()+"\n")); err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), err)
	}

	return ports.ApplyResult{
		Success:   true,
		Message:   fmt.Sprintf("wrote %s", stylesPath),
		Reference: stylesPath,
	}, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
