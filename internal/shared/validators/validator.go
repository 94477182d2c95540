package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagDimension = "dimension"

// dimensionPattern accepts socket, mc and ch values as printed by McUtils (socket0, Total, 3).
var dimensionPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// New creates a new validator instance with the custom tags registered.
// Field names in errors are taken from the json tag when present.
func New() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation(tagDimension, isDimension)
	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func isDimension(fl validator.FieldLevel) bool {
	return dimensionPattern.MatchString(fl.Field().String())
}
