package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/models"
)

// sqlUserRepository is the database/sql implementation of [UserDataService]
// shared by the PostgreSQL and SQLite backends. Dialect differences live in
// [DB.dialect].
//
// Timestamps come from the repository clock, in UTC with microsecond
// precision so that both backends round-trip them exactly.
type sqlUserRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLUserRepository constructs a [UserDataService] backed by db.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserDataService {
	logger.Debug().Str("dialect", db.dialect.name).Msg("creating sql user repository")
	return &sqlUserRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sqlUserRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *sqlUserRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearUsersQuery(r.builder())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sqlUserRepository.Clear").
			Bool("retryable", r.retryable(err)).
			Msg("failed to clear users")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqlUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sqlUserRepository.GetAll").
			Bool("retryable", r.retryable(err)).
			Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*sqlUserRepository.GetAll").
				Int("iteration", len(users)).
				Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.GetAll").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *sqlUserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.builder(), id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, r.DB.DB, "*sqlUserRepository.GetByID", query, args)
}

func (r *sqlUserRepository) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	query, args, err := buildSelectUserByLoginNameQuery(r.builder(), loginName)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, r.DB.DB, "*sqlUserRepository.GetByLoginName", query, args)
}

// Insert stores a new user. The unique index on login_name turns a taken
// login into [ErrLoginAlreadyExists].
func (r *sqlUserRepository) Insert(ctx context.Context, profile models.UserProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.timestamp()
	query, args, err := buildInsertUserQuery(r.builder(), profile, now)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.dialect.isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).
			Str("func", "*sqlUserRepository.Insert").
			Str("login_name", profile.LoginName).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.User{
		ID:          id,
		UserProfile: profile,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces every profile column of user id. The current row is read
// in the same transaction so CreatedAt is preserved and UpdatedAt moves
// strictly forward even when the clock has not.
func (r *sqlUserRepository) Update(ctx context.Context, id int64, profile models.UserProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	selectQuery, selectArgs, err := buildSelectUserByIDQuery(r.builder(), id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.Update").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := r.getOne(ctx, tx, "*sqlUserRepository.Update", selectQuery, selectArgs)
	if err != nil {
		return models.User{}, err
	}

	updated := current
	updated.UserProfile = profile
	updated.UpdatedAt = nextTimestamp(r.timestamp(), current.UpdatedAt)

	query, args, err := buildUpdateUserQuery(r.builder(), id, profile, updated.UpdatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if r.dialect.isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).
			Str("func", "*sqlUserRepository.Update").
			Int64("id", id).
			Bool("retryable", r.retryable(err)).
			Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.Update").Int64("id", id).Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

func (r *sqlUserRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sqlUserRepository.Delete").
			Int64("id", id).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqlUserRepository) getOne(ctx context.Context, q queryRower, funcName, query string, args []any) (models.User, error) {
	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Bool("retryable", r.retryable(err)).
			Msg("failed to get user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nextTimestamp returns now, or one microsecond past previous when the clock
// has not advanced beyond it.
func nextTimestamp(now, previous time.Time) time.Time {
	if now.After(previous) {
		return now
	}
	return previous.Add(time.Microsecond)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.LoginName,
		&user.EmailAddress,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}
