// Package validator plugs go-playground/validator into echo's Validator hook.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates request DTOs bound by echo handlers.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator that reports fields by their json names.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &EchoValidator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as ErrValidationFailed
// with a "field: rule" list in the details.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": is required"
	case "email":
		return fe.Field() + ": must be a valid email address"
	case "min":
		return fe.Field() + ": must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + ": must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}
