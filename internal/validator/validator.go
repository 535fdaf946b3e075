package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/internal/catalog"
)

const (
	ErrRequired  = "is required"
	ErrMinLength = "must be at least %s"
	ErrMaxLength = "must be at most %s"
	ErrOneOf     = "must be one of: %s"
	ErrUUID      = "must be a valid UUID"
	ErrInvalid   = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("sort_column", validateSortColumn)
	validator.RegisterValidation("sort_param", validateSortParam)

	return validator
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}

	return name
}

func validateSortColumn(fl validator.FieldLevel) bool {
	return slices.Contains(catalog.SortColumns(), fl.Field().String())
}

// validateSortParam accepts a sort column optionally prefixed with "-".
func validateSortParam(fl validator.FieldLevel) bool {
	return slices.Contains(sortParams(), fl.Field().String())
}

func sortParams() []string {
	var params []string
	for _, c := range catalog.SortColumns() {
		params = append(params, c, "-"+c)
	}

	return params
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "uuid":
		return ErrUUID
	case "sort_column":
		return fmt.Sprintf(ErrOneOf, strings.Join(catalog.SortColumns(), " "))
	case "sort_param":
		return fmt.Sprintf(ErrOneOf, strings.Join(sortParams(), " "))
	default:
		return ErrInvalid
	}
}
