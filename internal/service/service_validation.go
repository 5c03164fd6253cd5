package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura/internal/validators"
	"github.com/MKhiriev/aura/models"
)

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.VerifyEmail(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

type PasswordResetValidationService struct {
	inner     PasswordResetService
	validator validators.Validator
}

func NewPasswordResetValidationService() PasswordResetServiceWrapper {
	return &PasswordResetValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *PasswordResetValidationService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ForgotPassword(ctx, req)
}

func (v *PasswordResetValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ResetPassword(ctx, req)
}

func (v *PasswordResetValidationService) Wrap(inner PasswordResetService) PasswordResetService {
	v.inner = inner
	return v
}

type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AccountValidationService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *AccountValidationService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *AccountValidationService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, userID string, req models.DeleteAccountRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteAccount(ctx, userID, req)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) Create(ctx context.Context, userID string, req models.CreateEntryRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, req)
}

func (v *EntryValidationService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	return v.inner.List(ctx, userID)
}

func (v *EntryValidationService) Get(ctx context.Context, userID, entryID string) (models.Entry, error) {
	if err := v.validateID(ctx, userID, entryID); err != nil {
		return models.Entry{}, err
	}

	return v.inner.Get(ctx, userID, entryID)
}

func (v *EntryValidationService) Delete(ctx context.Context, userID, entryID string) error {
	if err := v.validateID(ctx, userID, entryID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, entryID)
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}

func (v *EntryValidationService) validateID(ctx context.Context, userID, entryID string) error {
	entry := models.Entry{ID: entryID, UserID: userID}
	if err := v.validator.Validate(ctx, entry, validators.FieldEntryID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
