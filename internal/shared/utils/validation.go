package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"warrantydesk/internal/shared/errors"
)

// NewBindingError converts a gin binding failure into an AppError. Field
// validation failures get per-field messages; anything else (malformed
// JSON, type mismatches) becomes a generic bad request.
func NewBindingError(err error) *errors.AppError {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.NewBadRequestError("invalid request body", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}

	return errors.NewBadRequestError("invalid request body", strings.Join(messages, "; "))
}

// getFieldErrorMessage returns a user-friendly message for a single field
// validation failure.
func getFieldErrorMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, strings.ReplaceAll(param, "2006-01-02", "YYYY-MM-DD"))
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}

// jsonFieldName derives the wire-level field name from the struct field.
func jsonFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	name := parts[len(parts)-1]
	return camelToSnake(name)
}

func camelToSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
