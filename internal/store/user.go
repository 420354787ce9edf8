package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
)

// UserPatch describes a partial update of a user. Nil fields are left
// untouched. The username and admin flag cannot be changed through a
// patch; admin status is set only at creation by another admin.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	HashedPassword *string
}

// UserStore defines the interface for user and application persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; plaintext passwords never reach the store.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries the hashed password, never the plaintext.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update applies a partial update to an existing user and returns the
	// updated row. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, username string, patch UserPatch) (*domain.User, error)

	// Delete removes a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, username string) error

	// Apply records that the user applied to the given job.
	// Returns ErrUserNotFound or ErrJobNotFound if either side of the
	// application is missing, and ErrAlreadyApplied on a duplicate.
	Apply(ctx context.Context, username string, jobID uuid.UUID) error

	// ApplicationIDs returns the IDs of all jobs the user applied to.
	ApplicationIDs(ctx context.Context, username string) ([]uuid.UUID, error)
}
