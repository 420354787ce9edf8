package shared

import (
	"fmt"
	"net/url"
	"strconv"
)

// QueryCoercer converts query-string values, which arrive as strings, into
// typed filter fields. Coercion failures are collected per field and
// reported as one BadRequest BEFORE any schema rule runs: a filter struct
// is only evaluated once every value in it has a well-defined type.
type QueryCoercer struct {
	values     url.Values
	violations []string
}

// NewQueryCoercer creates a coercer over the given query values.
func NewQueryCoercer(values url.Values) *QueryCoercer {
	return &QueryCoercer{values: values}
}

// String returns the named parameter, or nil if absent.
func (c *QueryCoercer) String(field string) *string {
	if !c.values.Has(field) {
		return nil
	}
	v := c.values.Get(field)
	return &v
}

// Int parses the named parameter as an integer, or nil if absent.
// A non-numeric value is recorded as a violation naming the field.
func (c *QueryCoercer) Int(field string) *int {
	if !c.values.Has(field) {
		return nil
	}

	n, err := strconv.Atoi(c.values.Get(field))
	if err != nil {
		c.violations = append(c.violations, fmt.Sprintf("%s must be an integer", field))
		return nil
	}

	return &n
}

// Bool parses the named parameter as a boolean, defaulting to false when
// absent. A value that is not a boolean literal is recorded as a violation.
func (c *QueryCoercer) Bool(field string) bool {
	if !c.values.Has(field) {
		return false
	}

	b, err := strconv.ParseBool(c.values.Get(field))
	if err != nil {
		c.violations = append(c.violations, fmt.Sprintf("%s must be a boolean", field))
		return false
	}

	return b
}

// Err returns a BadRequest carrying every coercion violation collected so
// far, or nil when all values coerced cleanly.
func (c *QueryCoercer) Err() *PipelineError {
	if len(c.violations) == 0 {
		return nil
	}
	return BadRequest(c.violations...)
}
