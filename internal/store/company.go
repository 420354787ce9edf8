package store

import (
	"context"

	"github.com/jobdesk/jobdesk-api/internal/domain"
)

// CompanyFilter narrows the result set of a company listing. Nil fields
// are not applied. Callers are responsible for range sanity checks
// (e.g. MinEmployees <= MaxEmployees) before the filter reaches the store.
type CompanyFilter struct {
	NameLike     *string
	MinEmployees *int
	MaxEmployees *int
}

// CompanyPatch describes a partial update of a company. Nil fields are
// left untouched. The handle is immutable.
type CompanyPatch struct {
	Name         *string
	Description  *string
	NumEmployees *int
	LogoURL      *string
}

// CompanyStore defines the interface for company data persistence.
type CompanyStore interface {
	// Create saves a new company to the store.
	// Returns ErrCompanyExists if the handle or name is already taken.
	Create(ctx context.Context, company *domain.Company) error

	// List retrieves all companies matching the filter, ordered by name.
	List(ctx context.Context, filter CompanyFilter) ([]*domain.Company, error)

	// GetByHandle retrieves a company by its handle.
	// Returns ErrCompanyNotFound if the company does not exist.
	GetByHandle(ctx context.Context, handle string) (*domain.Company, error)

	// Update applies a partial update to an existing company and returns
	// the updated row. Returns ErrCompanyNotFound if the company does not
	// exist and ErrCompanyExists on a name collision.
	Update(ctx context.Context, handle string, patch CompanyPatch) (*domain.Company, error)

	// Delete removes a company by its handle. Jobs referencing the
	// company are removed with it.
	// Returns ErrCompanyNotFound if the company does not exist.
	Delete(ctx context.Context, handle string) error
}
