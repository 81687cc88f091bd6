package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"taskmanager/internal/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the `validate` tags of a create DTO.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var v violations
	for _, fe := range fieldErrs {
		v.add(fe.Field(), describe(fe))
	}
	return v.err()
}

// checkOptional validates a present update field against tag. A present null
// is a violation; absent fields are not checked.
func (v *violations) checkOptional(field string, o dto.Optional[string], tag string) {
	if !o.Set {
		return
	}
	if o.Null {
		v.add(field, "must not be null")
		return
	}

	err := validate.Var(o.Value, tag)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		v.add(field, describe(fieldErrs[0]))
		return
	}
	v.add(field, "is invalid")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	}
	return "is invalid"
}
