package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide rule evaluator. The rule sets themselves
// live as declarative tags on the request structs; this gate only owns the
// collect-and-wrap contract around the evaluator.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Violations name fields by their JSON name, which is what the client
	// actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// DecodeJSON decodes the request body into the given struct. Unknown
// fields are rejected so typos surface as BadRequest instead of being
// silently dropped.
func DecodeJSON(r *http.Request, v interface{}) *PipelineError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return BadRequest("request body is not valid JSON: " + err.Error())
	}
	return nil
}

// ValidateStruct applies the struct's declared rule set and collects ALL
// violations, in field order, into a single BadRequest. It never stops at
// the first violation: clients get every problem in one round trip.
// Returns nil when the payload is clean.
func ValidateStruct(v interface{}) *PipelineError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// The evaluator itself failed (e.g. a non-struct payload); this is
		// a programming defect, not client input.
		return ServerFault("request validation failed", err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, violationMessage(fe))
	}

	return BadRequest(messages...)
}

// violationMessage renders one field violation as a human-readable message.
func violationMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
