package validator

import (
	"github.com/go-playground/validator/v10"
)

// A single validator instance is shared across the application so that
// struct metadata is cached once.
var validate = validator.New()

// Get returns the shared validator instance
func Get() *validator.Validate {
	return validate
}
