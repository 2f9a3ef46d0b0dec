// Package validator adapts go-playground/validator for echo's request binding.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a request validator with struct tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags. Handlers translate the returned error
// into a 400 envelope themselves.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
