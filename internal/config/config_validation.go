// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/aura/internal/crypto"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateForTool(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.OTPTTL <= 0 || cfg.App.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: secret lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.MailWorkers <= 0 || cfg.Workers.MailQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateForTool checks the subset used by administrative commands:
// storage and encryption keys.
func (cfg *StructuredConfig) validateForTool() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if !isValidEncryptionKey(cfg.App.EncryptionKey) {
		return fmt.Errorf("%w: encryption key must be 32 bytes or 64 hex characters", ErrInvalidAppConfigs)
	}

	for i, key := range cfg.App.PreviousEncryptionKeys {
		if !isValidEncryptionKey(key) {
			return fmt.Errorf("%w: previous encryption key #%d is malformed", ErrInvalidAppConfigs, i)
		}
	}

	return nil
}

func isValidEncryptionKey(key string) bool {
	_, err := crypto.ParseKey(key)
	return err == nil
}
