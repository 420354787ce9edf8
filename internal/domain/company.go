package domain

import (
	"errors"
	"regexp"
)

// Company validation errors
var (
	ErrEmptyCompanyHandle   = errors.New("company handle cannot be empty")
	ErrInvalidCompanyHandle = errors.New("company handle must be a lowercase slug")
	ErrEmptyCompanyName     = errors.New("company name cannot be empty")
	ErrNegativeEmployees    = errors.New("number of employees cannot be negative")
)

// handlePattern constrains company handles to URL-safe lowercase slugs.
var handlePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Company represents an employer that posts jobs on the board.
// The handle is the public identifier used in URLs and as the primary key.
type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	NumEmployees *int   `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`
}

// NewCompany creates a Company and validates it.
func NewCompany(handle, name, description string, numEmployees *int, logoURL string) (*Company, error) {
	company := &Company{
		Handle:       handle,
		Name:         name,
		Description:  description,
		NumEmployees: numEmployees,
		LogoURL:      logoURL,
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	return company, nil
}

// Validate checks if the Company has valid data.
// Returns an error if any field fails validation.
func (c *Company) Validate() error {
	if c.Handle == "" {
		return ErrEmptyCompanyHandle
	}

	if !handlePattern.MatchString(c.Handle) {
		return ErrInvalidCompanyHandle
	}

	if c.Name == "" {
		return ErrEmptyCompanyName
	}

	if c.NumEmployees != nil && *c.NumEmployees < 0 {
		return ErrNegativeEmployees
	}

	return nil
}
