package variation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

var missingKinds = map[string]IssueKind{
	"Slug":       IssueMissingSlug,
	"Color":      IssueMissingColor,
	"FontFamily": IssueMissingFontFamily,
}

// validateConfig reports palette entries and font families missing required
// fields. Such entries are kept; the render path tolerates them.
func validateConfig(cfg StyleConfig) []Issue {
	var issues []Issue
	for i, entry := range cfg.Settings.Color.Palette {
		issues = append(issues, structIssues(entry, fmt.Sprintf("settings.color.palette[%d]", i))...)
	}
	for i, family := range cfg.Settings.Typography.FontFamilies {
		issues = append(issues, structIssues(family, fmt.Sprintf("settings.typography.fontFamilies[%d]", i))...)
	}
	return issues
}

func structIssues(s any, path string) []Issue {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Kind: IssueMalformed, Path: path, Detail: err.Error()}}
	}
	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		kind, ok := missingKinds[fe.Field()]
		if !ok {
			kind = IssueMalformed
		}
		issues = append(issues, Issue{Kind: kind, Path: path, Detail: fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())})
	}
	return issues
}
