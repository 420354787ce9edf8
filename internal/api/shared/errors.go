package shared

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind tags a PipelineError with its place in the failure taxonomy.
// Every kind carries a fixed HTTP status.
type ErrorKind int

const (
	// KindBadRequest covers malformed or invalid input: coercion
	// failures and schema violations.
	KindBadRequest ErrorKind = iota

	// KindUnauthorized covers a missing or invalid credential where one
	// is required.
	KindUnauthorized

	// KindForbidden covers a valid identity lacking the required
	// capability.
	KindForbidden

	// KindNotFound covers references to resources that do not exist.
	KindNotFound

	// KindServerFault covers any unanticipated failure.
	KindServerFault
)

// Status returns the fixed HTTP status code for the kind.
func (k ErrorKind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// String returns the kind's name for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "server_fault"
	}
}

// PipelineError is the typed failure every pipeline stage returns instead
// of writing a response itself. It is created at the point of failure and
// propagates unchanged to the terminal error mapper.
type PipelineError struct {
	Kind     ErrorKind
	Messages []string
	Err      error // wrapped cause, surfaced in logs only
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Messages, "; "))
}

// Unwrap returns the wrapped cause to support errors.Is/errors.As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Message returns the client-facing message value: a plain string for a
// single message, or the full ordered sequence when schema validation
// collected several violations.
func (e *PipelineError) Message() any {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return e.Messages
}

// BadRequest creates a PipelineError for invalid input. The message order
// is preserved in the response body.
func BadRequest(messages ...string) *PipelineError {
	if len(messages) == 0 {
		messages = []string{"invalid request"}
	}
	return &PipelineError{Kind: KindBadRequest, Messages: messages}
}

// Unauthorized creates a PipelineError for a missing or invalid credential.
func Unauthorized(message string) *PipelineError {
	return &PipelineError{Kind: KindUnauthorized, Messages: []string{message}}
}

// Forbidden creates a PipelineError for an identity lacking a capability.
func Forbidden(message string) *PipelineError {
	return &PipelineError{Kind: KindForbidden, Messages: []string{message}}
}

// NotFound creates a PipelineError for a missing resource.
func NotFound(message string) *PipelineError {
	return &PipelineError{Kind: KindNotFound, Messages: []string{message}}
}

// ServerFault creates a PipelineError for an unanticipated failure. The
// cause is retained for logging but never reaches the client.
func ServerFault(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindServerFault, Messages: []string{message}, Err: err}
}
