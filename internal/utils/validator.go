// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return strings.ToLower(e.Field()) + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return strings.ToLower(e.Field()) + " must be at least " + e.Param() + " characters"
	case "gte":
		return strings.ToLower(e.Field()) + " must be at least " + e.Param()
	case "oneof":
		return strings.ToLower(e.Field()) + " must be one of: " + e.Param()
	default:
		return strings.ToLower(e.Field()) + " is invalid"
	}
}
