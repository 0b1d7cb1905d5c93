package helpers

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	httpURLPattern = regexp.MustCompile(`^https?://.+`)
	skuPattern     = regexp.MustCompile(`^[A-Z0-9_-]+$`)
)

// NewValidator returns a validator that reports fields by their json tag
// names and knows the slugformat, httpurl and skuformat tags.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("slugformat", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return httpURLPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("skuformat", func(fl validator.FieldLevel) bool {
		return skuPattern.MatchString(fl.Field().String())
	})

	return validate
}

// MapValidationError translates the first validator failure into the domain
// error taxonomy so handlers never see validator internals.
func MapValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return &domain.ValidationError{Message: err.Error()}
	}

	first := validationErrs[0]
	field := first.Field()

	switch first.Tag() {
	case "required":
		return &domain.RequiredFieldError{Field: field}
	case "url":
		return &domain.InvalidFormatError{Field: field, Expected: "valid URL"}
	case "httpurl":
		return &domain.InvalidFormatError{Field: field, Expected: "valid http or https URL"}
	case "slugformat":
		return &domain.InvalidFormatError{Field: field, Expected: "lowercase slug of letters, digits and hyphens"}
	case "skuformat":
		return &domain.InvalidFormatError{Field: field, Expected: "SKU of uppercase letters, digits, hyphens and underscores"}
	case "min":
		return &domain.InvalidRangeError{Field: field, Detail: "is below the minimum of " + first.Param()}
	case "max":
		return &domain.InvalidRangeError{Field: field, Detail: "is above the maximum of " + first.Param()}
	case "gt":
		return &domain.InvalidRangeError{Field: field, Detail: "must be greater than " + first.Param()}
	default:
		return &domain.ValidationError{Message: first.Error()}
	}
}
