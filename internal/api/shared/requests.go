package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// linkPattern accepts http(s) URLs with a dotted host. Only the start is
// anchored; anything may follow a valid URL prefix.
var linkPattern = regexp.MustCompile(`^https?://(www\.)?[a-zA-Z\d\-.]+\.[a-z]{1,6}([/a-z0-9\-._~:?#[\]@!$&'()*+,;=]*)`)

// Global validator instance for reuse. validator.Validate is safe for
// concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "hex24", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
	mustRegister(v, "link", func(fl validator.FieldLevel) bool {
		return IsLink(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// IsLink reports whether s matches the URL pattern used for avatars and
// card links.
func IsLink(s string) bool {
	return linkPattern.MatchString(s)
}

// ErrTrailingData is returned by DecodeJSON when the body holds more than
// one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

// DecodeJSON decodes the request body into v. Unknown fields are ignored.
// An empty body decodes as an empty object; anything after the first JSON
// value is rejected.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// ValidateStruct checks v against its `validate` tags. All violations are
// reported in one ValidationSchema failure, in struct field order.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	return domain.NewValidationError(formatViolations(violations))
}

// ValidateVar checks a single named value, such as a URL parameter,
// against a tag expression.
func ValidateVar(name, value, tag string) string {
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		return name + ": " + describe(violations[0])
	}
	return name + ": is invalid"
}

func formatViolations(violations validator.ValidationErrors) string {
	parts := make([]string, 0, len(violations))
	for _, fe := range violations {
		parts = append(parts, fe.Field()+": "+describe(fe))
	}
	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "hex24":
		return "must be a 24-character hex id"
	case "link":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
