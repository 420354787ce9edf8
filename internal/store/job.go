package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
)

// JobFilter narrows the result set of a job listing. Nil fields are not
// applied. HasEquity true restricts to jobs with a non-zero equity share;
// false means "no constraint", mirroring its query-string semantics.
type JobFilter struct {
	TitleLike *string
	MinSalary *int
	HasEquity bool
}

// JobPatch describes a partial update of a job. Nil fields are left
// untouched. The ID and company handle are immutable.
type JobPatch struct {
	Title  *string
	Salary *int
	Equity *float64
}

// JobStore defines the interface for job data persistence.
type JobStore interface {
	// Create saves a new job to the store.
	// Returns ErrCompanyNotFound if the referenced company does not exist.
	Create(ctx context.Context, job *domain.Job) error

	// List retrieves all jobs matching the filter, ordered by title.
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)

	// GetByID retrieves a job by its unique ID.
	// Returns ErrJobNotFound if the job does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// ListByCompany retrieves all jobs posted by the given company.
	ListByCompany(ctx context.Context, handle string) ([]*domain.Job, error)

	// Update applies a partial update to an existing job and returns the
	// updated row. Returns ErrJobNotFound if the job does not exist.
	Update(ctx context.Context, id uuid.UUID, patch JobPatch) (*domain.Job, error)

	// Delete removes a job by its ID.
	// Returns ErrJobNotFound if the job does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
