package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFrom(t *testing.T) {
	t.Parallel()

	t.Run("bare context resolves to anonymous", func(t *testing.T) {
		t.Parallel()

		id := IdentityFrom(context.Background())
		assert.True(t, id.Anonymous)
		assert.Empty(t, id.Username)
		assert.False(t, id.IsAdmin)
	})

	t.Run("attached identity round-trips", func(t *testing.T) {
		t.Parallel()

		ctx := WithIdentity(context.Background(), Identity{Username: "alice", IsAdmin: true})
		id := IdentityFrom(ctx)
		assert.False(t, id.Anonymous)
		assert.Equal(t, "alice", id.Username)
		assert.True(t, id.IsAdmin)
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// Two contexts must not share a trace ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}
