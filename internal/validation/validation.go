// Package validation coerces loosely typed request input onto model structs
// and checks the constraints declared in their validate tags.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = newValidator()

var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.DecodeHookFuncType(integralNumbers),
	mapstructure.DecodeHookFuncType(stringsOnly),
)

// FieldError describes one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error is returned when input does not fit a schema.
type Error struct {
	Details []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Bind decodes input onto out and validates the result. out must be a
// pointer to a struct; fields already set on it act as defaults.
func Bind(input map[string]any, out any) error {
	if err := Decode(input, out); err != nil {
		return err
	}
	return Struct(out)
}

// Decode copies input onto out by json field name. Numeric and boolean
// strings are converted to the field's type; integers must be integral and
// string fields only take strings. Keys that match no field are ignored,
// absent keys keep the value already in out and null clears it.
func Decode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		DecodeHook:       decodeHook,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	err = dec.Decode(input)
	if err == nil {
		return nil
	}
	var merr *mapstructure.Error
	if !errors.As(err, &merr) {
		return &Error{Details: []FieldError{{Field: fieldFromMessage(err.Error()), Message: err.Error(), Type: "type"}}}
	}
	details := make([]FieldError, 0, len(merr.Errors))
	for _, msg := range merr.Errors {
		details = append(details, FieldError{
			Field:   fieldFromMessage(msg),
			Message: "Value has the wrong type",
			Type:    "type",
		})
	}
	return &Error{Details: details}
}

// Struct checks the validate tags on v.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Type:    fe.Tag(),
		})
	}
	return &Error{Details: details}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func integralNumbers(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	switch n := data.(type) {
	case float64:
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%v is not an integer", n)
		}
	case float32:
		if float64(n) != math.Trunc(float64(n)) {
			return nil, fmt.Errorf("%v is not an integer", n)
		}
	}
	return data, nil
}

// stringsOnly stops weak decoding from turning booleans and numbers into
// strings.
func stringsOnly(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil, fmt.Errorf("expected a string, got %v", data)
	}
	return data, nil
}

// fieldFromMessage pulls the quoted field name mapstructure puts at the
// front of its messages.
func fieldFromMessage(msg string) string {
	start := strings.IndexByte(msg, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(msg[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "lte":
		return "Value must be less than or equal to " + fe.Param()
	case "gt":
		return "Value must be greater than " + fe.Param()
	case "lt":
		return "Value must be less than " + fe.Param()
	default:
		return "Invalid value"
	}
}
