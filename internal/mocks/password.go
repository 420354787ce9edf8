package mocks

import (
	"errors"

	"github.com/jobdesk/jobdesk-api/internal/service/auth"
)

// ErrMismatch is returned by MockPasswordHasher.Compare on a wrong password.
var ErrMismatch = errors.New("password mismatch")

// MockPasswordHasher is a test double for auth.PasswordHasher and
// auth.PasswordVerifier that sidesteps bcrypt's cost in unit tests.
type MockPasswordHasher struct {
	HashErr    error
	CompareErr error
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash returns a recognizable fake hash or the configured error.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare succeeds when the hash was produced by Hash for this password,
// unless an error is configured.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if hashedPassword != "hashed:"+password {
		return ErrMismatch
	}
	return nil
}
