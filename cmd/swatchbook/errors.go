package main

import (
	"errors"
	"fmt"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// describeError adds a hint for the typed errors the commands can surface.
func describeError(err error) string {
	var (
		cmdErr   *commandError
		parseErr *swatcherrors.ParseError
		valErr   *swatcherrors.ValidationError
		fetchErr *swatcherrors.FetchError
		applyErr *swatcherrors.ApplyError
	)

	switch {
	case errors.As(err, &cmdErr):
		return err.Error()
	case errors.As(err, &parseErr):
		return fmt.Sprintf("%v\n\nSuggestion: check the YAML syntax in %s.", err, parseErr.Path)
	case errors.As(err, &valErr):
		return fmt.Sprintf("%v\n\nSuggestion: fix the %q setting or override it with a flag.", err, valErr.Field)
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("%v\n\nSuggestion: check that %s is reachable.", err, fetchErr.Source)
	case errors.As(err, &applyErr):
		return fmt.Sprintf("%v\n\nSuggestion: check that the apply target accepts writes.", err)
	default:
		return err.Error()
	}
}
