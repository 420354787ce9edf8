package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the key type for context values set by the pipeline.
type ContextKey string

const (
	// IdentityContextKey is the context key for the resolved identity.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// Identity is the per-request resolution of a bearer credential. It is
// either the verified claim set of a user or the explicit anonymous
// marker; downstream guards never see the raw credential.
type Identity struct {
	Username  string
	IsAdmin   bool
	Anonymous bool
}

// Anonymous is the identity attached when no valid credential was
// presented. Absence of a credential is not itself an error; guards
// decide whether anonymity is acceptable for a route.
func Anonymous() Identity {
	return Identity{Anonymous: true}
}

// WithIdentity returns a new context carrying the resolved identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, id)
}

// IdentityFrom retrieves the resolved identity from the context. A context
// that never passed through the extractor resolves to anonymous: the
// pipeline fails closed, never default-allow.
func IdentityFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(IdentityContextKey).(Identity); ok {
		return id
	}
	return Anonymous()
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string. If crypto/rand fails, falls back to a
// timestamp-derived value rather than a static one.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if n, err := rand.Read(b); err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"fallback", "time-based generation")

		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], uint64(time.Now().Unix()))
	}

	return hex.EncodeToString(b)
}
