package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jobdesk/jobdesk-api/internal/redact"
)

// ErrorEnvelope is the stable failure shape every client sees, regardless
// of which pipeline stage failed.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the message(s) and the HTTP status of the failure.
// Message is a plain string for single failures and an ordered string
// array when schema validation collected several violations.
type ErrorBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithPipelineError is the single terminal point of the pipeline:
// it converts a PipelineError into the stable error envelope and logs it
// with the request's trace ID. Server faults are logged at ERROR level
// with the redacted cause; the cause never reaches the client.
func RespondWithPipelineError(w http.ResponseWriter, r *http.Request, perr *PipelineError) {
	traceID := GetTraceID(r.Context())
	status := perr.Kind.Status()

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("kind", perr.Kind.String()),
		slog.String("message", perr.Error()),
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	if perr.Err != nil {
		// Only the redacted form of the cause is logged.
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(perr.Err)),
			slog.String("error_type", fmt.Sprintf("%T", perr.Err)))
	}

	slog.LogAttrs(r.Context(), logLevel, "request failed", logAttrs...)

	RespondWithJSON(w, r, status, ErrorEnvelope{
		Error: ErrorBody{
			Message: perr.Message(),
			Status:  status,
		},
	})
}
