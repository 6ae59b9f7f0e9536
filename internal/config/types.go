package config

import "time"

// Source types.
const (
	SourceDir  = "dir"
	SourceGit  = "git"
	SourceREST = "rest"
)

// DefaultFile is read when no --config flag is given and it exists in the
// working directory.
const DefaultFile = "swatchbook.yaml"

// Config represents the full swatchbook configuration document.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log,omitempty"`
	Render RenderConfig `yaml:"render,omitempty"`
}

// SourceConfig selects where variations come from and where applies go.
type SourceConfig struct {
	Type string `yaml:"type" validate:"required,source_type"`
	// Path is the theme directory for dir sources and the clone destination
	// for git sources.
	Path    string            `yaml:"path,omitempty"`
	URL     string            `yaml:"url,omitempty"`
	Ref     string            `yaml:"ref,omitempty"`
	Timeout time.Duration     `yaml:"timeout,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
	// File receives log output. The terminal UI discards logs when empty.
	File string `yaml:"file,omitempty"`
}

// RenderConfig tunes the rendering backends.
type RenderConfig struct {
	// CardBackground is the card colour used for contrast decisions when no
	// computed style is available.
	CardBackground string `yaml:"card_background,omitempty" validate:"omitempty,css_colour"`
	Mode           string `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Source: SourceConfig{Type: SourceDir, Path: "."},
		Log:    LogConfig{Level: "info"},
		Render: RenderConfig{CardBackground: "#ffffff", Mode: "light"},
	}
}

// CloneDir is the clone destination of a git source. The working directory
// is never cloned into, so an empty or "." path selects a temporary clone.
func (s SourceConfig) CloneDir() string {
	if s.Path == "" || s.Path == "." {
		return ""
	}
	return s.Path
}
