package vectorizer

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// structValidator returns the shared validator. Field errors are reported
// under the API parameter name taken from the `form` tag.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// validateStruct runs the struct tags of v and converts failures into a
// *ValidationError.
func validateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	out := &ValidationError{}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hexcolor6":
		return fmt.Sprintf("must be a hex color like #RRGGBB, got %q", fe.Value())
	case "url":
		return "must be a valid URL"
	case "base64":
		return "must be valid base64"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

// RequireOne returns an error unless at least one of values is non-empty.
// names label the values in the error message, in the same order.
//
// A value is empty when it is nil, a nil pointer, or a zero-length string,
// slice or map.
func RequireOne(names []string, values ...any) error {
	for _, v := range values {
		if !isEmpty(v) {
			return nil
		}
	}
	return &ValidationError{Fields: []FieldError{{
		Field:   strings.Join(names, "|"),
		Message: fmt.Sprintf("either %s must be provided", strings.Join(names, ", ")),
	}}}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return rv.IsZero()
}

// ValidateOption returns an error unless v is one of allowed.
func ValidateOption[T comparable](name string, v T, allowed ...T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	opts := make([]string, len(allowed))
	for i, a := range allowed {
		opts[i] = fmt.Sprint(a)
	}
	return invalid(name, "invalid value %v, must be one of: %s", v, strings.Join(opts, ", "))
}

// Number is the set of types accepted by ValidateRange.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ValidateRange returns an error unless min <= v <= max.
func ValidateRange[T Number](name string, v, min, max T) error {
	if v < min || v > max {
		return invalid(name, "invalid value %v, valid range is %v to %v", v, min, max)
	}
	return nil
}

// ValidateHex returns an error unless color is a six digit hex color with a
// leading '#', e.g. "#1A2B3C".
func ValidateHex(name, color string) error {
	if !hexColorPattern.MatchString(color) {
		return invalid(name, "invalid hex color code %q", color)
	}
	return nil
}
