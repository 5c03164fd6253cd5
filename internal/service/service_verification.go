package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/aura/internal/adapter"
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/internal/workers"
	"github.com/MKhiriev/aura/models"
)

type verificationService struct {
	userRepository store.UserRepository
	codeRepository store.VerificationRepository
	secrets        crypto.SecretGenerator
	mail           workers.MailQueue

	hashKey  string
	otpTTL   time.Duration
	resetTTL time.Duration
	resetURL string
	clock    func() time.Time

	logger *logger.Logger
}

func NewVerificationService(
	userRepository store.UserRepository,
	codeRepository store.VerificationRepository,
	secrets crypto.SecretGenerator,
	mail workers.MailQueue,
	cfg config.App,
	logger *logger.Logger,
) VerificationService {
	hashKey := cfg.SecretHashKey
	if hashKey == "" {
		hashKey = cfg.TokenSignKey
	}

	return &verificationService{
		userRepository: userRepository,
		codeRepository: codeRepository,
		secrets:        secrets,
		mail:           mail,
		hashKey:        hashKey,
		otpTTL:         cfg.OTPTTL,
		resetTTL:       cfg.ResetTokenTTL,
		resetURL:       cfg.ResetURL,
		clock:          func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// IssueRegistrationOTP replaces any pending passcode of the user with a new
// one and queues it for delivery.
func (v *verificationService) IssueRegistrationOTP(ctx context.Context, user models.User) error {
	otp, err := v.secrets.OTP()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSecretGenerationFailed, err)
	}

	if err = v.saveSecret(ctx, user.UserID, models.PurposeEmailVerification, otp, v.otpTTL); err != nil {
		return err
	}

	v.mail.Enqueue(ctx, adapter.VerificationMessage(user.Email, user.Name, otp, v.otpTTL))
	return nil
}

// VerifyRegistrationOTP checks otp against the pending passcode of the
// account with this email and, on success, consumes it and marks the account
// verified. A replayed passcode fails because consumption deletes it.
func (v *verificationService) VerifyRegistrationOTP(ctx context.Context, email, otp string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := v.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrEmailNotRegistered
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if user.Verified {
		return models.User{}, ErrAlreadyVerified
	}

	code, err := v.codeRepository.FindCode(ctx, user.UserID, models.PurposeEmailVerification)
	if errors.Is(err, store.ErrVerificationNotFound) {
		return models.User{}, ErrInvalidOrExpiredOTP
	}
	if err != nil {
		return models.User{}, fmt.Errorf("verification code lookup failed: %w", err)
	}

	if err = v.consume(ctx, code, utils.HashString(otp, v.hashKey), ErrInvalidOrExpiredOTP); err != nil {
		return models.User{}, err
	}

	if err = v.userRepository.MarkUserVerified(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "*verificationService.VerifyRegistrationOTP").Str("user_id", user.UserID).Msg("marking user verified failed")
		return models.User{}, fmt.Errorf("marking user verified failed: %w", err)
	}
	user.Verified = true

	log.Info().Str("user_id", user.UserID).Msg("email verified")
	return user, nil
}

// IssueResetToken stores a new reset token for the user and queues the
// reset link for delivery.
func (v *verificationService) IssueResetToken(ctx context.Context, user models.User) error {
	token, err := v.secrets.ResetToken()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSecretGenerationFailed, err)
	}

	if err = v.saveSecret(ctx, user.UserID, models.PurposePasswordReset, token, v.resetTTL); err != nil {
		return err
	}

	v.mail.Enqueue(ctx, adapter.PasswordResetMessage(user.Email, user.Name, v.resetURL, token, v.resetTTL))
	return nil
}

func (v *verificationService) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	secretHash := utils.HashString(token, v.hashKey)

	code, err := v.codeRepository.FindCodeBySecret(ctx, models.PurposePasswordReset, secretHash)
	if errors.Is(err, store.ErrVerificationNotFound) {
		return "", ErrInvalidOrExpiredToken
	}
	if err != nil {
		return "", fmt.Errorf("reset token lookup failed: %w", err)
	}

	if err = v.consume(ctx, code, secretHash, ErrInvalidOrExpiredToken); err != nil {
		return "", err
	}

	return code.UserID, nil
}

// consume checks the stored hash and expiry, then deletes the row keyed by
// the presented hash. Only one concurrent caller can win the delete.
func (v *verificationService) consume(ctx context.Context, code models.VerificationCode, secretHash string, invalid error) error {
	if !utils.EqualHashes(code.SecretHash, secretHash) || code.Expired(v.clock()) {
		return invalid
	}

	err := v.codeRepository.ConsumeCode(ctx, code.UserID, code.Purpose, secretHash)
	if errors.Is(err, store.ErrVerificationNotFound) {
		return invalid
	}
	if err != nil {
		return fmt.Errorf("verification code consumption failed: %w", err)
	}

	return nil
}

func (v *verificationService) saveSecret(ctx context.Context, userID string, purpose models.VerificationPurpose, secret string, ttl time.Duration) error {
	now := v.clock()

	err := v.codeRepository.SaveCode(ctx, models.VerificationCode{
		UserID:     userID,
		Purpose:    purpose,
		SecretHash: utils.HashString(secret, v.hashKey),
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationService.saveSecret").Str("purpose", string(purpose)).Msg("saving secret failed")
		return fmt.Errorf("saving %s secret failed: %w", purpose, err)
	}

	return nil
}
