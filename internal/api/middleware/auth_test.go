package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/mocks"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthContextPopulate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authHeader    string
		claims        *auth.Claims
		verifyErr     error
		wantIdentity  shared.Identity
		wantVerifyRun bool
	}{
		{
			name:         "no header resolves to anonymous",
			authHeader:   "",
			wantIdentity: shared.Anonymous(),
		},
		{
			name:         "malformed header resolves to anonymous without verification",
			authHeader:   "NotBearer",
			wantIdentity: shared.Anonymous(),
		},
		{
			name:          "garbage token degrades to anonymous",
			authHeader:    "Bearer garbage",
			verifyErr:     auth.ErrInvalidToken,
			wantIdentity:  shared.Anonymous(),
			wantVerifyRun: true,
		},
		{
			name:          "expired token degrades to anonymous",
			authHeader:    "Bearer stale",
			verifyErr:     auth.ErrExpiredToken,
			wantIdentity:  shared.Anonymous(),
			wantVerifyRun: true,
		},
		{
			name:          "valid token attaches claims",
			authHeader:    "Bearer valid",
			claims:        &auth.Claims{Username: "alice", IsAdmin: true},
			wantIdentity:  shared.Identity{Username: "alice", IsAdmin: true},
			wantVerifyRun: true,
		},
		{
			name:          "lowercase bearer scheme accepted",
			authHeader:    "bearer valid",
			claims:        &auth.Claims{Username: "bob"},
			wantIdentity:  shared.Identity{Username: "bob"},
			wantVerifyRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := &mocks.MockTokenService{Claims: tt.claims, VerifyErr: tt.verifyErr}
			mw := NewAuthContext(tokens)

			var captured shared.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = shared.IdentityFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/companies", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.Populate(next).ServeHTTP(rec, req)

			// The extractor never aborts the request.
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantIdentity, captured)
			if tt.wantVerifyRun {
				assert.Equal(t, 1, tokens.VerifyCalls)
			} else {
				assert.Zero(t, tokens.VerifyCalls)
			}
		})
	}
}
