package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Job validation errors
var (
	ErrEmptyJobID        = errors.New("job ID cannot be empty")
	ErrEmptyJobTitle     = errors.New("job title cannot be empty")
	ErrNegativeSalary    = errors.New("salary cannot be negative")
	ErrEquityOutOfRange  = errors.New("equity must be between 0 and 1")
	ErrEmptyJobCompany   = errors.New("job must reference a company handle")
)

// Job represents a single job posting attached to a company.
// Salary and Equity are optional; postings frequently omit both.
type Job struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Salary        *int      `json:"salary"`
	Equity        *float64  `json:"equity"`
	CompanyHandle string    `json:"companyHandle"`
}

// NewJob creates a new Job with a generated ID and validates it.
func NewJob(title string, salary *int, equity *float64, companyHandle string) (*Job, error) {
	job := &Job{
		ID:            uuid.New(),
		Title:         title,
		Salary:        salary,
		Equity:        equity,
		CompanyHandle: companyHandle,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks if the Job has valid data.
// Returns an error if any field fails validation.
func (j *Job) Validate() error {
	if j.ID == uuid.Nil {
		return ErrEmptyJobID
	}

	if j.Title == "" {
		return ErrEmptyJobTitle
	}

	if j.Salary != nil && *j.Salary < 0 {
		return ErrNegativeSalary
	}

	if j.Equity != nil && (*j.Equity < 0 || *j.Equity > 1) {
		return ErrEquityOutOfRange
	}

	if j.CompanyHandle == "" {
		return ErrEmptyJobCompany
	}

	return nil
}
