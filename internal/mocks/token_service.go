package mocks

import (
	"context"

	"github.com/jobdesk/jobdesk-api/internal/service/auth"
)

// MockTokenService is a field-configured test double for auth.TokenService.
type MockTokenService struct {
	SignToken   string
	SignErr     error
	Claims      *auth.Claims
	VerifyErr   error
	VerifyCalls int
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Sign returns the configured token or error.
func (m *MockTokenService) Sign(ctx context.Context, username string, isAdmin bool) (string, error) {
	if m.SignErr != nil {
		return "", m.SignErr
	}
	if m.SignToken != "" {
		return m.SignToken, nil
	}
	return "signed-token-for-" + username, nil
}

// Verify returns the configured claims or error and records the call.
func (m *MockTokenService) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.VerifyCalls++
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	return m.Claims, nil
}
