package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Error messages use JSON tag names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return formatValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	var messages []string
	for _, err := range errs {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s es obligatorio", field)
		case "email":
			message = fmt.Sprintf("%s debe ser un email válido", field)
		case "min":
			message = fmt.Sprintf("%s debe tener al menos %s caracteres", field, err.Param())
		case "max":
			message = fmt.Sprintf("%s debe tener como máximo %s caracteres", field, err.Param())
		case "uuid":
			message = fmt.Sprintf("%s debe ser un UUID válido", field)
		case "gte":
			message = fmt.Sprintf("%s debe ser mayor o igual a %s", field, err.Param())
		case "oneof":
			message = fmt.Sprintf("%s debe ser uno de: %s", field, err.Param())
		default:
			message = fmt.Sprintf("%s no es válido (%s)", field, err.Tag())
		}
		messages = append(messages, message)
	}

	return errors.New(strings.Join(messages, "; "))
}
