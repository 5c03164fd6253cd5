package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/models"
)

type passwordResetService struct {
	userRepository store.UserRepository
	verification   VerificationService
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewPasswordResetService(userRepository store.UserRepository, verification VerificationService, hasher crypto.PasswordHasher, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		verification:   verification,
		hasher:         hasher,
		logger:         logger,
	}
}

// ForgotPassword issues a reset token when the email belongs to an account.
// The result is the same whether or not it does: a failure to store or send
// the token for a known account is only logged.
func (p *passwordResetService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.ForgotPassword").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if err = p.verification.IssueResetToken(ctx, user); err != nil {
		log.Err(err).Str("func", "*passwordResetService.ForgotPassword").Str("user_id", user.UserID).Msg("issuing reset token failed")
		return nil
	}

	log.Info().Str("user_id", user.UserID).Msg("password reset token issued")
	return nil
}

// ResetPassword burns the token and stores the new password. The new hash
// is computed first so a hashing failure leaves the token usable.
func (p *passwordResetService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	passwordHash, err := p.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.ResetPassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	userID, err := p.verification.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return err
	}

	if err = p.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		log.Err(err).Str("func", "*passwordResetService.ResetPassword").Str("user_id", userID).Msg("password update failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password reset")
	return nil
}
