package service

import (
	"fmt"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/internal/workers"
	"github.com/MKhiriev/aura/models"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	AccountService       AccountService
	EntryService         EntryService
	KeyRotationService   KeyRotationService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, mail workers.MailQueue, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewContentCipherFromConfig(cfg.App.EncryptionKey, cfg.App.PreviousEncryptionKeys)
	if err != nil {
		return nil, fmt.Errorf("content cipher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.PasswordCost)
	verification := NewVerificationService(storages.UserRepository, storages.VerificationRepository, crypto.NewSecretGenerator(), mail, cfg.App, logger)

	authService := NewAuthService(storages.UserRepository, verification, hasher, cfg.App, logger)
	passwordResetService := NewPasswordResetService(storages.UserRepository, verification, hasher, logger)
	accountService := NewAccountService(storages.UserRepository, storages.VerificationRepository, hasher, logger)
	entryService := NewEntryService(storages.EntryRepository, cipher, logger)

	return &Services{
		AuthService:          NewAuthValidationService().Wrap(authService),
		PasswordResetService: NewPasswordResetValidationService().Wrap(passwordResetService),
		AccountService:       NewAccountValidationService().Wrap(accountService),
		EntryService:         NewEntryValidationService().Wrap(entryService),
		KeyRotationService:   NewKeyRotationService(storages.EntryRepository, cipher, logger),
		AppInfoService:       appInfo,
	}, nil
}
