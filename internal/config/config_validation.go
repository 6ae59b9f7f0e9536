package config

import (
	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return swatcherrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	src := cfg.Source
	if src.Timeout < 0 {
		return swatcherrors.NewValidationError("source.timeout", "timeout must not be negative", nil)
	}
	switch src.Type {
	case SourceDir:
		if src.Path == "" {
			return swatcherrors.NewValidationError("source.path", "a dir source needs a path", nil)
		}
	case SourceGit:
		if src.URL == "" {
			return swatcherrors.NewValidationError("source.url", "a git source needs a repository url", nil)
		}
		if err := v.Var(src.URL, "git_url"); err != nil {
			return swatcherrors.NewValidationError("source.url", "not a valid git repository url", err)
		}
	case SourceREST:
		if err := v.Var(src.URL, "required,http_url"); err != nil {
			return swatcherrors.NewValidationError("source.url", "a rest source needs an http(s) url", err)
		}
	}

	return nil
}
