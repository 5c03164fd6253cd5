package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, email verification, credential checks and the
// session token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// verification issues and checks registration passcodes.
	verification VerificationService

	// hasher hashes and verifies account passwords.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, verification VerificationService, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		verification:   verification,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates an account that still has to verify its email.
//
// An unverified account with the same email is taken over: its name and
// password are replaced and a fresh passcode is sent. A verified account
// yields ErrUserAlreadyExists, as does losing a concurrent insert race.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	name := strings.TrimSpace(req.Name)

	var user models.User
	existing, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil && existing.Verified:
		return models.User{}, ErrUserAlreadyExists

	case err == nil:
		existing.Name = name
		existing.PasswordHash = passwordHash
		user, err = a.userRepository.UpdateUnverifiedUser(ctx, existing)
		if errors.Is(err, store.ErrUserNotFound) {
			// verified or deleted between lookup and update
			return models.User{}, ErrUserAlreadyExists
		}

	case errors.Is(err, store.ErrUserNotFound):
		user, err = a.userRepository.CreateUser(ctx, models.User{
			Email:        req.Email,
			Name:         name,
			PasswordHash: passwordHash,
		})
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user registration failed")
		return models.User{}, fmt.Errorf("user registration failed: %w", err)
	}

	if err = a.verification.IssueRegistrationOTP(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("user_id", user.UserID).Msg("issuing passcode failed")
		return models.User{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered, waiting for email verification")
	return user, nil
}

// VerifyEmail completes registration and returns a session token so the
// client is logged in right away.
func (a *authService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.User, models.Token, error) {
	user, err := a.verification.VerifyRegistrationOTP(ctx, req.Email, strings.TrimSpace(req.OTP))
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an existing user.
//
// Unknown emails and wrong passwords are indistinguishable to the caller
// (ErrInvalidCredentials). A correct password on an unverified account
// yields ErrEmailNotVerified.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, req.Password) {
		log.Info().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !user.Verified {
		return models.User{}, models.Token{}, ErrEmailNotVerified
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
