package middleware

import (
	"net/http"
	"strings"

	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
)

// AuthContext resolves the bearer credential on every request into an
// identity attached to the request context. It runs unconditionally,
// including on routes that require no authentication, and it never rejects
// a request itself: a missing, malformed, or tampered credential degrades
// to the anonymous identity, and the guards decide downstream whether
// anonymity is acceptable. This is the single place the raw credential is
// parsed.
type AuthContext struct {
	tokens auth.TokenService
}

// NewAuthContext creates an AuthContext middleware over the given token
// service.
func NewAuthContext(tokens auth.TokenService) *AuthContext {
	return &AuthContext{tokens: tokens}
}

// Populate extracts and verifies the Authorization header and attaches the
// resolved identity to the request context.
func (m *AuthContext) Populate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.WithIdentity(r.Context(), m.resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve turns the request's credential, if any, into an identity.
func (m *AuthContext) resolve(r *http.Request) shared.Identity {
	header := r.Header.Get("Authorization")
	if header == "" {
		// No credential is legal; many routes are public.
		return shared.Anonymous()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		logger.FromContext(r.Context()).Debug("malformed authorization header, proceeding as anonymous")
		return shared.Anonymous()
	}

	claims, err := m.tokens.Verify(r.Context(), parts[1])
	if err != nil {
		// Verification failure is deferred to the authorization stage so
		// public routes still work with a stale or garbage credential.
		logger.FromContext(r.Context()).Debug("credential verification failed, proceeding as anonymous",
			"error", err)
		return shared.Anonymous()
	}

	return shared.Identity{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
}
