package shared

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindServerFault, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.Status(), tt.kind.String())
	}
}

func TestPipelineErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("single message is a plain string", func(t *testing.T) {
		t.Parallel()

		perr := NotFound("company not found")
		assert.Equal(t, "company not found", perr.Message())
	})

	t.Run("multiple messages stay a sequence", func(t *testing.T) {
		t.Parallel()

		perr := BadRequest("name is required", "minEmployees must be at least 0")
		assert.Equal(t, []string{"name is required", "minEmployees must be at least 0"}, perr.Message())
	})

	t.Run("empty bad request gets a default message", func(t *testing.T) {
		t.Parallel()

		perr := BadRequest()
		assert.Equal(t, "invalid request", perr.Message())
	})
}

func TestPipelineErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	perr := ServerFault("database unavailable", cause)

	require.ErrorIs(t, perr, cause)

	var got *PipelineError
	require.ErrorAs(t, error(perr), &got)
	assert.Equal(t, KindServerFault, got.Kind)
}
