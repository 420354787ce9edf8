package api

import (
	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
)

// Request payloads. The validate tags are the declarative rule sets the
// schema validation gate evaluates before any mutating handler runs.

// TokenRequest is the payload for POST /auth/token.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /auth/register. Registration
// never grants admin; only an existing admin can create admin users.
type RegisterRequest struct {
	Username  string `json:"username"  validate:"required,min=1,max=30"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
}

// CreateUserRequest is the payload for POST /users (admin only).
type CreateUserRequest struct {
	Username  string `json:"username"  validate:"required,min=1,max=30"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the payload for PATCH /users/{username}. All fields
// are optional; absent fields stay untouched. The username and admin flag
// are not patchable and are rejected as unknown fields by the decoder.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=1"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Password  *string `json:"password"  validate:"omitempty,min=8,max=72"`
}

// CreateCompanyRequest is the payload for POST /companies.
type CreateCompanyRequest struct {
	Handle       string `json:"handle"       validate:"required,min=1,max=40"`
	Name         string `json:"name"         validate:"required,min=1"`
	Description  string `json:"description"`
	NumEmployees *int   `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      string `json:"logoUrl"      validate:"omitempty,url"`
}

// UpdateCompanyRequest is the payload for PATCH /companies/{handle}.
// The handle is immutable and rejected as an unknown field.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"         validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl"      validate:"omitempty,url"`
}

// CompanyFilterRequest is the coerced query string of GET /companies.
type CompanyFilterRequest struct {
	NameLike     *string `json:"nameLike"`
	MinEmployees *int    `json:"minEmployees" validate:"omitempty,gte=0"`
	MaxEmployees *int    `json:"maxEmployees" validate:"omitempty,gte=0"`
}

// CreateJobRequest is the payload for POST /jobs.
type CreateJobRequest struct {
	Title         string   `json:"title"         validate:"required,min=1"`
	Salary        *int     `json:"salary"        validate:"omitempty,gte=0"`
	Equity        *float64 `json:"equity"        validate:"omitempty,gte=0,lte=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required"`
}

// UpdateJobRequest is the payload for PATCH /jobs/{id}. The ID and company
// handle are immutable and rejected as unknown fields.
type UpdateJobRequest struct {
	Title  *string  `json:"title"  validate:"omitempty,min=1"`
	Salary *int     `json:"salary" validate:"omitempty,gte=0"`
	Equity *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
}

// JobFilterRequest is the coerced query string of GET /jobs.
type JobFilterRequest struct {
	TitleLike *string `json:"titleLike"`
	MinSalary *int    `json:"minSalary" validate:"omitempty,gte=0"`
	HasEquity bool    `json:"hasEquity"`
}

// Response envelopes. Success shapes are route-defined; only the error
// envelope is uniform across the API.

// TokenResponse carries a freshly signed credential.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserView is the client-facing projection of a user. The password hash
// never appears in any response.
type UserView struct {
	Username     string      `json:"username"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	IsAdmin      bool        `json:"isAdmin"`
	Applications []uuid.UUID `json:"applications,omitempty"`
}

// NewUserView projects a domain user into its response shape.
func NewUserView(user *domain.User, applications []uuid.UUID) UserView {
	return UserView{
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		IsAdmin:      user.IsAdmin,
		Applications: applications,
	}
}

// UserResponse wraps a single user.
type UserResponse struct {
	User UserView `json:"user"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Users []UserView `json:"users"`
}

// UserCreatedResponse wraps a newly created user along with a credential
// for it.
type UserCreatedResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company *domain.Company `json:"company"`
}

// CompanyDetail is a company together with its job postings.
type CompanyDetail struct {
	*domain.Company
	Jobs []*domain.Job `json:"jobs"`
}

// CompanyDetailResponse wraps a company detail view.
type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}

// CompaniesResponse wraps a company listing.
type CompaniesResponse struct {
	Companies []*domain.Company `json:"companies"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job *domain.Job `json:"job"`
}

// JobsResponse wraps a job listing.
type JobsResponse struct {
	Jobs []*domain.Job `json:"jobs"`
}

// DeletedResponse acknowledges a deletion with the removed identifier.
type DeletedResponse struct {
	Deleted string `json:"deleted"`
}

// AppliedResponse acknowledges a job application.
type AppliedResponse struct {
	Applied uuid.UUID `json:"applied"`
}
