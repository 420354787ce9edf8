package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// PostgresJobStore implements the store.JobStore interface
// using a PostgreSQL database as the storage backend.
type PostgresJobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJobStore creates a new PostgreSQL implementation of the
// JobStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, slog.Default() is used.
func NewPostgresJobStore(db store.DBTX, logger *slog.Logger) *PostgresJobStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

// Ensure PostgresJobStore implements store.JobStore interface
var _ store.JobStore = (*PostgresJobStore)(nil)

// Create saves a new job.
// Returns store.ErrCompanyNotFound when the referenced company does not
// exist (foreign key violation).
func (s *PostgresJobStore) Create(ctx context.Context, job *domain.Job) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := job.Validate(); err != nil {
		log.Warn("job validation failed during create",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return err
	}

	query := `
		INSERT INTO jobs (id, title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Salary,
		job.Equity,
		job.CompanyHandle,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("job references unknown company",
				slog.String("job_id", job.ID.String()),
				slog.String("company_handle", job.CompanyHandle))
			return store.ErrCompanyNotFound
		}
		log.Error("failed to create job",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return err
	}

	log.Info("job created",
		slog.String("job_id", job.ID.String()),
		slog.String("company_handle", job.CompanyHandle))
	return nil
}

// List retrieves jobs matching the filter, ordered by title.
func (s *PostgresJobStore) List(ctx context.Context, filter store.JobFilter) ([]*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		where []string
		args  []interface{}
	)
	if filter.TitleLike != nil {
		args = append(args, "%"+*filter.TitleLike+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		where = append(where, fmt.Sprintf("salary >= $%d", len(args)))
	}
	if filter.HasEquity {
		where = append(where, "equity > 0")
	}

	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY title"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list jobs", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectJobs(rows)
}

// GetByID retrieves a job by its unique ID.
// Returns store.ErrJobNotFound if the job does not exist.
func (s *PostgresJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE id = $1
	`
	job, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("job not found", slog.String("job_id", id.String()))
			return nil, store.ErrJobNotFound
		}
		log.Error("failed to get job",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()))
		return nil, err
	}

	return job, nil
}

// ListByCompany retrieves all jobs posted by the given company.
func (s *PostgresJobStore) ListByCompany(ctx context.Context, handle string) ([]*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE company_handle = $1
		ORDER BY title
	`
	rows, err := s.db.QueryContext(ctx, query, handle)
	if err != nil {
		log.Error("failed to list company jobs",
			slog.String("error", err.Error()),
			slog.String("company_handle", handle))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectJobs(rows)
}

// Update applies a partial update to a job. Only non-nil patch fields are
// written. Returns store.ErrJobNotFound if the job does not exist, and the
// updated job otherwise.
func (s *PostgresJobStore) Update(ctx context.Context, id uuid.UUID, patch store.JobPatch) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		sets []string
		args []interface{}
	)
	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Salary != nil {
		args = append(args, *patch.Salary)
		sets = append(sets, fmt.Sprintf("salary = $%d", len(args)))
	}
	if patch.Equity != nil {
		args = append(args, *patch.Equity)
		sets = append(sets, fmt.Sprintf("equity = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING id, title, salary, equity, company_handle
	`, strings.Join(sets, ", "), len(args))

	job, err := scanJob(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("job not found during update", slog.String("job_id", id.String()))
			return nil, store.ErrJobNotFound
		}
		log.Error("failed to update job",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()))
		return nil, err
	}

	log.Info("job updated", slog.String("job_id", id.String()))
	return job, nil
}

// Delete removes a job.
// Returns store.ErrJobNotFound if the job does not exist.
func (s *PostgresJobStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete job",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrJobNotFound); err != nil {
		return err
	}

	log.Info("job deleted", slog.String("job_id", id.String()))
	return nil
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		job    domain.Job
		salary sql.NullInt64
		equity sql.NullFloat64
	)
	err := row.Scan(
		&job.ID,
		&job.Title,
		&salary,
		&equity,
		&job.CompanyHandle,
	)
	if err != nil {
		return nil, err
	}
	if salary.Valid {
		n := int(salary.Int64)
		job.Salary = &n
	}
	if equity.Valid {
		e := equity.Float64
		job.Equity = &e
	}
	return &job, nil
}

func collectJobs(rows *sql.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
