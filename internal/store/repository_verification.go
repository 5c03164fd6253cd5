package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

// verificationRepository keeps at most one hashed secret per user and
// purpose. Secrets themselves are never stored.
type verificationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	logger.Debug().Msg("creating verification repository")
	return &verificationRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCode replaces any earlier code of the same purpose for the user.
func (r *verificationRepository) SaveCode(ctx context.Context, code models.VerificationCode) error {
	log := logger.FromContext(ctx)

	if code.CreatedAt.IsZero() {
		code.CreatedAt = r.db.now()
	}
	code.ExpiresAt = code.ExpiresAt.UTC()

	query, args, err := upsertVerificationQuery(r.db.builder, code)
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.SaveCode").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.SaveCode").Msg("error saving code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *verificationRepository) FindCode(ctx context.Context, userID string, purpose models.VerificationPurpose) (models.VerificationCode, error) {
	query, args, err := selectVerificationQuery(r.db.builder, userID, purpose)
	if err != nil {
		return models.VerificationCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*verificationRepository.FindCode", query, args)
}

func (r *verificationRepository) FindCodeBySecret(ctx context.Context, purpose models.VerificationPurpose, secretHash string) (models.VerificationCode, error) {
	query, args, err := selectVerificationBySecretQuery(r.db.builder, purpose, secretHash)
	if err != nil {
		return models.VerificationCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*verificationRepository.FindCodeBySecret", query, args)
}

// ConsumeCode deletes the row matching all three keys. When nothing was
// deleted the secret was wrong or already used: [ErrVerificationNotFound].
func (r *verificationRepository) ConsumeCode(ctx context.Context, userID string, purpose models.VerificationPurpose, secretHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := consumeVerificationQuery(r.db.builder, userID, purpose, secretHash)
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.ConsumeCode").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execOne(ctx, r.db, query, args, ErrVerificationNotFound); err != nil {
		log.Err(err).Str("func", "*verificationRepository.ConsumeCode").Msg("error consuming code")
		return err
	}

	return nil
}

func (r *verificationRepository) DeleteCodes(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteByUserQuery(r.db.builder, verificationTable, "user_id", userID)
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.DeleteCodes").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*verificationRepository.DeleteCodes").Msg("error deleting codes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *verificationRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.VerificationCode, error) {
	log := logger.FromContext(ctx)

	var (
		code models.VerificationCode
		err  error
	)
	err = r.db.withRetry(ctx, func() error {
		code, err = scanVerification(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.VerificationCode{}, ErrVerificationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning code")
		return models.VerificationCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return code, nil
}
