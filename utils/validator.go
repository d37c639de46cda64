package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings that are only whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param()+" characters")
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param()+" characters")
			case "notblank":
				messages = append(messages, field+" must not be blank")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
