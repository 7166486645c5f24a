package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their lowercase name, e.g. "specialty" instead of "Specialty"
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.ToLower(fld.Name)
	})
	_ = v.RegisterValidation("present", isPresent)
	return &CustomValidator{
		validator: v,
	}
}

// isPresent rejects blank strings, also when they arrive wrapped in an interface{}.
// required alone accepts any non-nil interface value.
func isPresent(fl validator.FieldLevel) bool {
	field := fl.Field()
	for field.Kind() == reflect.Interface || field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Invalid:
		return false
	default:
		return true
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field to a short description
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "present":
				errors[field] = field + " is required"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
