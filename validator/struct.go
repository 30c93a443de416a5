package validator

import (
	"errors"
	"reflect"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
	"github.com/golangid/orderpush/candishared"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(v.Validator)
		}
	}
}

// StructValidator struct
type StructValidator struct {
	Validator *validatorengine.Validate
}

// NewStructValidator using go-playground validator, field name in error follow json tag
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	ve.RegisterValidation("notblank", func(fl validatorengine.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	sv := &StructValidator{Validator: ve}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// ValidateStruct function, return *candishared.ValidationError on invalid field
func (v *StructValidator) ValidateStruct(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validatorengine.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		msg := e.Tag()
		if e.Param() != "" {
			msg += "=" + e.Param()
		}
		fields[e.Field()] = msg
	}
	return candishared.NewValidationError(fields)
}
