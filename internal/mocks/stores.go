package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// MockCompanyStore is a function-field test double for store.CompanyStore.
// Unset functions fail the contract loudly by returning ErrNotFound.
type MockCompanyStore struct {
	CreateFn      func(ctx context.Context, company *domain.Company) error
	ListFn        func(ctx context.Context, filter store.CompanyFilter) ([]*domain.Company, error)
	GetByHandleFn func(ctx context.Context, handle string) (*domain.Company, error)
	UpdateFn      func(ctx context.Context, handle string, patch store.CompanyPatch) (*domain.Company, error)
	DeleteFn      func(ctx context.Context, handle string) error
}

var _ store.CompanyStore = (*MockCompanyStore)(nil)

func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFn == nil {
		return store.ErrNotFound
	}
	return m.CreateFn(ctx, company)
}

func (m *MockCompanyStore) List(ctx context.Context, filter store.CompanyFilter) ([]*domain.Company, error) {
	if m.ListFn == nil {
		return nil, store.ErrNotFound
	}
	return m.ListFn(ctx, filter)
}

func (m *MockCompanyStore) GetByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	if m.GetByHandleFn == nil {
		return nil, store.ErrCompanyNotFound
	}
	return m.GetByHandleFn(ctx, handle)
}

func (m *MockCompanyStore) Update(ctx context.Context, handle string, patch store.CompanyPatch) (*domain.Company, error) {
	if m.UpdateFn == nil {
		return nil, store.ErrCompanyNotFound
	}
	return m.UpdateFn(ctx, handle, patch)
}

func (m *MockCompanyStore) Delete(ctx context.Context, handle string) error {
	if m.DeleteFn == nil {
		return store.ErrCompanyNotFound
	}
	return m.DeleteFn(ctx, handle)
}

// MockJobStore is a function-field test double for store.JobStore.
type MockJobStore struct {
	CreateFn        func(ctx context.Context, job *domain.Job) error
	ListFn          func(ctx context.Context, filter store.JobFilter) ([]*domain.Job, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListByCompanyFn func(ctx context.Context, handle string) ([]*domain.Job, error)
	UpdateFn        func(ctx context.Context, id uuid.UUID, patch store.JobPatch) (*domain.Job, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
}

var _ store.JobStore = (*MockJobStore)(nil)

func (m *MockJobStore) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFn == nil {
		return store.ErrNotFound
	}
	return m.CreateFn(ctx, job)
}

func (m *MockJobStore) List(ctx context.Context, filter store.JobFilter) ([]*domain.Job, error) {
	if m.ListFn == nil {
		return nil, store.ErrNotFound
	}
	return m.ListFn(ctx, filter)
}

func (m *MockJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if m.GetByIDFn == nil {
		return nil, store.ErrJobNotFound
	}
	return m.GetByIDFn(ctx, id)
}

func (m *MockJobStore) ListByCompany(ctx context.Context, handle string) ([]*domain.Job, error) {
	if m.ListByCompanyFn == nil {
		return nil, nil
	}
	return m.ListByCompanyFn(ctx, handle)
}

func (m *MockJobStore) Update(ctx context.Context, id uuid.UUID, patch store.JobPatch) (*domain.Job, error) {
	if m.UpdateFn == nil {
		return nil, store.ErrJobNotFound
	}
	return m.UpdateFn(ctx, id, patch)
}

func (m *MockJobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return store.ErrJobNotFound
	}
	return m.DeleteFn(ctx, id)
}

// MockUserStore is a function-field test double for store.UserStore.
type MockUserStore struct {
	CreateFn         func(ctx context.Context, user *domain.User) error
	ListFn           func(ctx context.Context) ([]*domain.User, error)
	GetByUsernameFn  func(ctx context.Context, username string) (*domain.User, error)
	UpdateFn         func(ctx context.Context, username string, patch store.UserPatch) (*domain.User, error)
	DeleteFn         func(ctx context.Context, username string) error
	ApplyFn          func(ctx context.Context, username string, jobID uuid.UUID) error
	ApplicationIDsFn func(ctx context.Context, username string) ([]uuid.UUID, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn == nil {
		return store.ErrNotFound
	}
	return m.CreateFn(ctx, user)
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn == nil {
		return nil, store.ErrNotFound
	}
	return m.ListFn(ctx)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, store.ErrUserNotFound
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *MockUserStore) Update(ctx context.Context, username string, patch store.UserPatch) (*domain.User, error) {
	if m.UpdateFn == nil {
		return nil, store.ErrUserNotFound
	}
	return m.UpdateFn(ctx, username, patch)
}

func (m *MockUserStore) Delete(ctx context.Context, username string) error {
	if m.DeleteFn == nil {
		return store.ErrUserNotFound
	}
	return m.DeleteFn(ctx, username)
}

func (m *MockUserStore) Apply(ctx context.Context, username string, jobID uuid.UUID) error {
	if m.ApplyFn == nil {
		return store.ErrJobNotFound
	}
	return m.ApplyFn(ctx, username, jobID)
}

func (m *MockUserStore) ApplicationIDs(ctx context.Context, username string) ([]uuid.UUID, error) {
	if m.ApplicationIDsFn == nil {
		return nil, nil
	}
	return m.ApplicationIDsFn(ctx, username)
}
