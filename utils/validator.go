package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator shares gin's "binding" tags so request structs carry one
// set of rules for both transport binding and service-level validation.
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidateStruct validates a struct using its binding/validate tags and
// returns one entry per failing field.
func ValidateStruct(s interface{}) []ValidationError {
	var errors []ValidationError

	if err := validate.Struct(s); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []ValidationError{{Field: "", Tag: "", Message: err.Error()}}
		}
		for _, fieldErr := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   strings.ToLower(fieldErr.Field()),
				Tag:     fieldErr.Tag(),
				Message: validationMessage(fieldErr),
			})
		}
	}

	return errors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
