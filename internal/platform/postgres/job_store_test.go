package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobStore(t *testing.T) (*PostgresJobStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresJobStore(db, nil), mock
}

func jobColumns() []string {
	return []string{"id", "title", "salary", "equity", "company_handle"}
}

func testJob(t *testing.T) *domain.Job {
	t.Helper()

	salary := 120000
	equity := 0.05
	job, err := domain.NewJob("Engineer", &salary, &equity, "acme")
	require.NoError(t, err)
	return job
}

func TestJobStoreCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, mock := newJobStore(t)
		job := testJob(t)

		mock.ExpectExec("INSERT INTO jobs").
			WithArgs(job.ID, "Engineer", 120000, 0.05, "acme").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Create(context.Background(), job))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown company maps to ErrCompanyNotFound", func(t *testing.T) {
		s, mock := newJobStore(t)
		job := testJob(t)

		mock.ExpectExec("INSERT INTO jobs").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

		err := s.Create(context.Background(), job)
		assert.ErrorIs(t, err, store.ErrCompanyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobStoreList(t *testing.T) {
	t.Run("hasEquity adds an unbound predicate", func(t *testing.T) {
		s, mock := newJobStore(t)

		min := 50000
		mock.ExpectQuery(`WHERE salary >= \$1 AND equity > 0`).
			WithArgs(50000).
			WillReturnRows(sqlmock.NewRows(jobColumns()))

		_, err := s.List(context.Background(), store.JobFilter{
			MinSalary: &min,
			HasEquity: true,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null salary and equity scan to nil", func(t *testing.T) {
		s, mock := newJobStore(t)

		id := uuid.New()
		rows := sqlmock.NewRows(jobColumns()).
			AddRow(id, "Intern", nil, nil, "acme")
		mock.ExpectQuery("FROM jobs").WillReturnRows(rows)

		jobs, err := s.List(context.Background(), store.JobFilter{})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Nil(t, jobs[0].Salary)
		assert.Nil(t, jobs[0].Equity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobStoreGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newJobStore(t)

		id := uuid.New()
		rows := sqlmock.NewRows(jobColumns()).
			AddRow(id, "Engineer", int64(120000), 0.05, "acme")
		mock.ExpectQuery("FROM jobs").
			WithArgs(id).
			WillReturnRows(rows)

		job, err := s.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, job.ID)
		require.NotNil(t, job.Salary)
		assert.Equal(t, 120000, *job.Salary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing maps to ErrJobNotFound", func(t *testing.T) {
		s, mock := newJobStore(t)

		id := uuid.New()
		mock.ExpectQuery("FROM jobs").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrJobNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobStoreListByCompany(t *testing.T) {
	s, mock := newJobStore(t)

	rows := sqlmock.NewRows(jobColumns()).
		AddRow(uuid.New(), "Engineer", int64(120000), nil, "acme").
		AddRow(uuid.New(), "Designer", nil, 0.01, "acme")
	mock.ExpectQuery(`WHERE company_handle = \$1`).
		WithArgs("acme").
		WillReturnRows(rows)

	jobs, err := s.ListByCompany(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobStoreUpdate(t *testing.T) {
	s, mock := newJobStore(t)

	id := uuid.New()
	title := "Staff Engineer"
	rows := sqlmock.NewRows(jobColumns()).
		AddRow(id, "Staff Engineer", int64(120000), nil, "acme")
	mock.ExpectQuery(`UPDATE jobs\s+SET title = \$1\s+WHERE id = \$2`).
		WithArgs("Staff Engineer", id).
		WillReturnRows(rows)

	job, err := s.Update(context.Background(), id, store.JobPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", job.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobStoreDelete(t *testing.T) {
	t.Run("zero rows affected maps to ErrJobNotFound", func(t *testing.T) {
		s, mock := newJobStore(t)

		id := uuid.New()
		mock.ExpectExec("DELETE FROM jobs").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Delete(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrJobNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
