package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

// convertValidationError normalizes validator errors into swatchbook validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"cardbackground": "card_background",
	"url":            "url",
}

// yamlishFieldName turns Config.Render.CardBackground into render.card_background.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(part)
		if mapped, ok := fieldNames[name]; ok {
			name = mapped
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
