package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
	sourceTypes   = map[string]struct{}{SourceDir: {}, SourceGit: {}, SourceREST: {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("source_type", func(fl validator.FieldLevel) bool {
			_, ok := sourceTypes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("css_colour", func(fl validator.FieldLevel) bool {
			_, ok := colour.Parse(fl.Field().String(), colour.NamedResolver{})
			return ok
		})

		_ = v.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
			return isHTTPURL(fl.Field().String())
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true
			}
			if strings.TrimSpace(urlStr) == "" {
				return false
			}
			if isHTTPURL(urlStr) {
				return true
			}
			if sshGitPattern.MatchString(urlStr) {
				return true
			}
			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func isHTTPURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}
	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}
	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
