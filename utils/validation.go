package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// validate is the singleton validator instance
	validate *validator.Validate
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a request body.
// Data is meaningful only when Success is true; Errors only when it is false.
type Result[T any] struct {
	Success bool
	Data    T
	Errors  []FieldError
}

// Normalizer is implemented by request types that clean their own input
// (trimming, lowercasing) before the rules run.
type Normalizer interface {
	Normalize()
}

// Validate decodes body into T and checks it against its validate tags.
// Malformed input never panics; it is reported as a failed Result.
func Validate[T any](body []byte) Result[T] {
	var data T

	if len(bytes.TrimSpace(body)) == 0 {
		return failed[T](FieldError{Field: "body", Message: "Request body is required"})
	}

	if err := json.Unmarshal(body, &data); err != nil {
		return failed[T](decodeError(err))
	}

	if n, ok := any(&data).(Normalizer); ok {
		n.Normalize()
	}

	if err := validate.Struct(&data); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return Result[T]{Success: false, Errors: fieldErrors(reflect.TypeOf(data), validationErrors)}
		}
		return failed[T](FieldError{Field: "body", Message: "Request body must be a JSON object"})
	}

	return Result[T]{Success: true, Data: data}
}

func failed[T any](errs ...FieldError) Result[T] {
	return Result[T]{Success: false, Errors: errs}
}

// decodeError turns a json decoding failure into a field error
func decodeError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return FieldError{Field: "body", Message: "Request body must be a JSON object"}
		}
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be a %s", field, jsonKind(typeErr.Type))}
	}
	return FieldError{Field: "body", Message: "Invalid JSON body"}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}

// fieldErrors maps validator failures to {field, message} pairs.
// Messages come from msg_<tag> struct tags when present.
func fieldErrors(root reflect.Type, errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		field := trimNamespace(fe.Namespace())
		out = append(out, FieldError{
			Field:   field,
			Message: messageFor(root, fe, field),
		})
	}
	return out
}

// trimNamespace drops the leading struct name from a validator namespace
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(root reflect.Type, fe validator.FieldError, field string) string {
	if sf, ok := lookupField(root, fe.StructNamespace()); ok {
		if msg := sf.Tag.Get("msg_" + fe.Tag()); msg != "" {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid Email Address"
	case "uuid", "uuid4":
		return "Invalid ID"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// lookupField walks a struct namespace such as "Request.Author.Name"
func lookupField(t reflect.Type, structNamespace string) (reflect.StructField, bool) {
	parts := strings.Split(structNamespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}

	var sf reflect.StructField
	for _, name := range parts[1:] {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		// Strip slice indexes like Items[0]
		if i := strings.Index(name, "["); i >= 0 {
			name = name[:i]
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return reflect.StructField{}, false
		}
		sf = f
		t = f.Type
		if t.Kind() == reflect.Slice {
			t = t.Elem()
		}
	}
	return sf, true
}

// ParseUUID parses a path or query identifier
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID format: %s", s)
	}
	return id, nil
}
