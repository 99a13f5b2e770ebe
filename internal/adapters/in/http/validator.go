package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shiprates/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator with go-playground/validator. Tag
// failures come back as errs.ValueIsInvalid errors named after the JSON field.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	errList := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fe.Field(), describe(fe)))
	}
	return errors.Join(errList...)
}

func describe(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errors.New("is required")
	case "len":
		return fmt.Errorf("must have length %s", fe.Param())
	case "gt":
		return fmt.Errorf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Errorf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Errorf("must be at most %s", fe.Param())
	case "min":
		return fmt.Errorf("must have at least %s entries", fe.Param())
	default:
		return fmt.Errorf("failed %q", fe.Tag())
	}
}
