package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile changes and removal against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection, ID generator and logger.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the generated
// UserID and timestamps.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.db.now()
	user.UpdatedAt = user.CreatedAt

	query, args, err := insertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail returns the user with exactly this email or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email, "*userRepository.FindUserByEmail")
}

// FindUserByID returns the user with this ID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUserBy(ctx, "id", userID, "*userRepository.FindUserByID")
}

func (r *userRepository) findUserBy(ctx context.Context, column, value, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserByQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUnverifiedUser replaces name and password hash of an account that
// has not been verified yet. A verified or missing account yields
// [ErrUserNotFound].
func (r *userRepository) UpdateUnverifiedUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.db.now()
	query, args, err := updateUnverifiedUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUnverifiedUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUnverifiedUser").Msg("error updating user")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) MarkUserVerified(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := markUserVerifiedQuery(r.db.builder, userID, r.db.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.MarkUserVerified").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.MarkUserVerified").Msg("error marking user verified")
		return err
	}

	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.db.now()
	query, args, err := updateProfileQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := updatePasswordHashQuery(r.db.builder, userID, passwordHash, r.db.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Msg("error updating password")
		return err
	}

	return nil
}

// DeleteUser removes the user's entries, pending codes and the user row in a
// single transaction. Either all three go or nothing does.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	steps := []struct {
		table  string
		column string
	}{
		{entriesTable, "user_id"},
		{verificationTable, "user_id"},
		{usersTable, "id"},
	}

	var result sql.Result
	for _, step := range steps {
		query, args, err := deleteByUserQuery(r.db.builder, step.table, step.column, userID)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err = tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("table", step.table).Msg("error deleting rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	// result of the last step, the users row
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *userRepository) execOne(ctx context.Context, query string, args []any, notFound error) error {
	return execOne(ctx, r.db, query, args, notFound)
}

// execOne runs a DML statement and maps zero affected rows to notFound.
func execOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	var result sql.Result
	err := db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
