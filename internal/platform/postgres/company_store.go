package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// PostgresCompanyStore implements the store.CompanyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompanyStore creates a new PostgreSQL implementation of the
// CompanyStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, slog.Default() is used.
func NewPostgresCompanyStore(db store.DBTX, logger *slog.Logger) *PostgresCompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

// Ensure PostgresCompanyStore implements store.CompanyStore interface
var _ store.CompanyStore = (*PostgresCompanyStore)(nil)

// Create saves a new company.
// Returns store.ErrCompanyExists when the handle or name is already taken.
func (s *PostgresCompanyStore) Create(ctx context.Context, company *domain.Company) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := company.Validate(); err != nil {
		log.Warn("company validation failed during create",
			slog.String("error", err.Error()),
			slog.String("handle", company.Handle))
		return err
	}

	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		company.Handle,
		company.Name,
		company.Description,
		company.NumEmployees,
		company.LogoURL,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate company during create",
				slog.String("handle", company.Handle))
			return store.ErrCompanyExists
		}
		log.Error("failed to create company",
			slog.String("error", err.Error()),
			slog.String("handle", company.Handle))
		return err
	}

	log.Info("company created", slog.String("handle", company.Handle))
	return nil
}

// List retrieves companies matching the filter, ordered by name.
func (s *PostgresCompanyStore) List(ctx context.Context, filter store.CompanyFilter) ([]*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		where []string
		args  []interface{}
	)
	if filter.NameLike != nil {
		args = append(args, "%"+*filter.NameLike+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.MinEmployees != nil {
		args = append(args, *filter.MinEmployees)
		where = append(where, fmt.Sprintf("num_employees >= $%d", len(args)))
	}
	if filter.MaxEmployees != nil {
		args = append(args, *filter.MaxEmployees)
		where = append(where, fmt.Sprintf("num_employees <= $%d", len(args)))
	}

	query := `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list companies", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var companies []*domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			log.Error("failed to scan company row", slog.String("error", err.Error()))
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		log.Error("company row iteration failed", slog.String("error", err.Error()))
		return nil, err
	}

	return companies, nil
}

// GetByHandle retrieves a company by its handle.
// Returns store.ErrCompanyNotFound if the company does not exist.
func (s *PostgresCompanyStore) GetByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1
	`
	company, err := scanCompany(s.db.QueryRowContext(ctx, query, handle))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("company not found", slog.String("handle", handle))
			return nil, store.ErrCompanyNotFound
		}
		log.Error("failed to get company",
			slog.String("error", err.Error()),
			slog.String("handle", handle))
		return nil, err
	}

	return company, nil
}

// Update applies a partial update to a company. Only non-nil patch fields
// are written. Returns store.ErrCompanyNotFound if the company does not
// exist, and the updated company otherwise.
func (s *PostgresCompanyStore) Update(ctx context.Context, handle string, patch store.CompanyPatch) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		sets []string
		args []interface{}
	)
	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.NumEmployees != nil {
		args = append(args, *patch.NumEmployees)
		sets = append(sets, fmt.Sprintf("num_employees = $%d", len(args)))
	}
	if patch.LogoURL != nil {
		args = append(args, *patch.LogoURL)
		sets = append(sets, fmt.Sprintf("logo_url = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetByHandle(ctx, handle)
	}

	args = append(args, handle)
	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE handle = $%d
		RETURNING handle, name, description, num_employees, logo_url
	`, strings.Join(sets, ", "), len(args))

	company, err := scanCompany(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("company not found during update", slog.String("handle", handle))
			return nil, store.ErrCompanyNotFound
		}
		if isUniqueViolation(err) {
			return nil, store.ErrCompanyExists
		}
		log.Error("failed to update company",
			slog.String("error", err.Error()),
			slog.String("handle", handle))
		return nil, err
	}

	log.Info("company updated", slog.String("handle", handle))
	return company, nil
}

// Delete removes a company and, via cascade, its jobs.
// Returns store.ErrCompanyNotFound if the company does not exist.
func (s *PostgresCompanyStore) Delete(ctx context.Context, handle string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		log.Error("failed to delete company",
			slog.String("error", err.Error()),
			slog.String("handle", handle))
		return err
	}

	if err := checkRowsAffected(result, store.ErrCompanyNotFound); err != nil {
		return err
	}

	log.Info("company deleted", slog.String("handle", handle))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var (
		company      domain.Company
		numEmployees sql.NullInt64
	)
	err := row.Scan(
		&company.Handle,
		&company.Name,
		&company.Description,
		&numEmployees,
		&company.LogoURL,
	)
	if err != nil {
		return nil, err
	}
	if numEmployees.Valid {
		n := int(numEmployees.Int64)
		company.NumEmployees = &n
	}
	return &company, nil
}
