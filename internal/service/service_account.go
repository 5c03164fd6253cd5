package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/internal/validators"
	"github.com/MKhiriev/aura/models"
)

type accountService struct {
	userRepository store.UserRepository
	codeRepository store.VerificationRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, codeRepository store.VerificationRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		codeRepository: codeRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (a *accountService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	return models.NewProfile(user), nil
}

// UpdateProfile applies the supplied fields only. An empty dob or gender
// clears the stored value.
func (a *accountService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.DOB != nil {
		if *req.DOB == "" {
			user.DateOfBirth = nil
		} else {
			dob, err := validators.ParseDOB(*req.DOB)
			if err != nil {
				return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDOB)
			}
			user.DateOfBirth = &dob
		}
	}
	if req.Gender != nil {
		gender := strings.TrimSpace(*req.Gender)
		if gender == "" {
			user.Gender = nil
		} else {
			user.Gender = &gender
		}
	}

	updated, err := a.userRepository.UpdateProfile(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateProfile").Str("user_id", userID).Msg("profile update failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return models.NewProfile(updated), nil
}

// ChangePassword replaces the password after checking the current one and
// drops any pending reset token.
func (a *accountService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(user.PasswordHash, req.CurrentPassword) {
		return ErrIncorrectCurrentPassword
	}

	passwordHash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Str("user_id", userID).Msg("password update failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("password update failed: %w", err)
	}

	if err = a.codeRepository.DeleteCodes(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("pending codes were not removed after password change")
	}

	log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// DeleteAccount removes the user with every entry and pending code after
// the password was re-entered correctly.
func (a *accountService) DeleteAccount(ctx context.Context, userID string, req models.DeleteAccountRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(user.PasswordHash, req.Password) {
		return ErrIncorrectPassword
	}

	if err = a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*accountService.DeleteAccount").Str("user_id", userID).Msg("account deletion failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

func (a *accountService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.findUser").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
