package utils

import (
	"errors"
	"reflect"
	"strings"

	"student-management/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// blank-after-trim counts as missing
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStudentInput checks a create or update payload and returns one
// FieldError per failing field, or nil when the payload is valid.
func ValidateStudentInput(payload interface{}) []models.FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "body", Message: "Invalid input"}}
	}

	fieldErrors := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field()),
		})
	}
	return fieldErrors
}

func messageFor(field string) string {
	switch field {
	case "firstName":
		return "First name is required"
	case "lastName":
		return "Last name is required"
	case "age":
		return "Age must be a positive integer"
	case "major":
		return "Major is required"
	}
	return "Invalid value for " + field
}
