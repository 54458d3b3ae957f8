package auth

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/go-profile-server/internal/errors"
)

// Validator checks request bodies against their `validate` struct tags and reports
// failures as an errors.ValidationError keyed by json field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s. Only ValidationError is returned for invalid input.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrapf(errors.ErrValidationFailed, "%v", err)
	}

	ve := &errors.ValidationError{Fields: make([]errors.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, errors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return ve
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldLabel(fe.Field()) + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		if fe.Param() == "1" {
			return fieldLabel(fe.Field()) + " is required"
		}
		return "Please enter a " + fe.Field() + " with " + fe.Param() + " or more characters"
	default:
		return fe.Field() + " is invalid"
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
