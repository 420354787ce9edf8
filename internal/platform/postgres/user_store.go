package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, slog.Default() is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create saves a new user. The user must already carry a hashed password;
// plaintext never reaches the store.
// Returns store.ErrUsernameExists when the username is taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	query := `
		INSERT INTO users (username, first_name, last_name, email, hashed_password, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.HashedPassword,
		user.IsAdmin,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate username during create",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	log.Info("user created",
		slog.String("username", user.Username),
		slog.Bool("is_admin", user.IsAdmin))
	return nil
}

// List retrieves all users, ordered by username.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, first_name, last_name, email, hashed_password, is_admin
		FROM users
		ORDER BY username
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("user row iteration failed", slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}

// GetByUsername retrieves a user by username.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, first_name, last_name, email, hashed_password, is_admin
		FROM users
		WHERE username = $1
	`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	return user, nil
}

// Update applies a partial update to a user. Only non-nil patch fields are
// written; the admin flag is not patchable here. Returns
// store.ErrUserNotFound if the user does not exist, and the updated user
// otherwise.
func (s *PostgresUserStore) Update(ctx context.Context, username string, patch store.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		sets []string
		args []interface{}
	)
	if patch.FirstName != nil {
		args = append(args, *patch.FirstName)
		sets = append(sets, fmt.Sprintf("first_name = $%d", len(args)))
	}
	if patch.LastName != nil {
		args = append(args, *patch.LastName)
		sets = append(sets, fmt.Sprintf("last_name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if patch.HashedPassword != nil {
		args = append(args, *patch.HashedPassword)
		sets = append(sets, fmt.Sprintf("hashed_password = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetByUsername(ctx, username)
	}

	args = append(args, username)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE username = $%d
		RETURNING username, first_name, last_name, email, hashed_password, is_admin
	`, strings.Join(sets, ", "), len(args))

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found during update", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	log.Info("user updated", slog.String("username", username))
	return user, nil
}

// Delete removes a user and, via cascade, their applications.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}

	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user deleted", slog.String("username", username))
	return nil
}

// Apply records a job application for the user.
// Returns store.ErrAlreadyApplied on a duplicate application and
// store.ErrJobNotFound or store.ErrUserNotFound when a referenced entity
// does not exist (foreign key violation).
func (s *PostgresUserStore) Apply(ctx context.Context, username string, jobID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO applications (username, job_id)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, username, jobID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate application",
				slog.String("username", username),
				slog.String("job_id", jobID.String()))
			return store.ErrAlreadyApplied
		}
		if isForeignKeyViolation(err) {
			return applicationTargetError(err, username, jobID)
		}
		log.Error("failed to record application",
			slog.String("error", err.Error()),
			slog.String("username", username),
			slog.String("job_id", jobID.String()))
		return err
	}

	log.Info("application recorded",
		slog.String("username", username),
		slog.String("job_id", jobID.String()))
	return nil
}

// ApplicationIDs retrieves the IDs of the jobs the user applied to.
func (s *PostgresUserStore) ApplicationIDs(ctx context.Context, username string) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT job_id
		FROM applications
		WHERE username = $1
		ORDER BY job_id
	`
	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		log.Error("failed to list applications",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// applicationTargetError resolves which side of an application's foreign
// keys is missing. The constraint name distinguishes the job reference
// from the user reference.
func applicationTargetError(err error, username string, jobID uuid.UUID) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "job") {
		return fmt.Errorf("%w: job %s", store.ErrJobNotFound, jobID)
	}
	return fmt.Errorf("%w: user %s", store.ErrUserNotFound, username)
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.HashedPassword,
		&user.IsAdmin,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
