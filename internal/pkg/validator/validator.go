// Package validator wraps go-playground/validator so that struct and value
// validation failures surface as a single joined error rooted at
// ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned by Validate
// and ValidateVar when a rule is violated.
var ErrValidationFailed = errors.New("validation failed")

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// Example: "'Value': value 'abc' does not meet the requirements for the 'numeric' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fieldErr.Field(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

// ValidateVar checks a single value against tag, e.g. "required,eth_addr".
func ValidateVar(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err)
	}
	return nil
}
