// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENCRYPTION_KEY":           "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
		"APP_PREVIOUS_ENCRYPTION_KEYS": "aa,bb",
		"APP_TOKEN_SIGN_KEY":           "jwt_secret",
		"APP_TOKEN_ISSUER":             "test_issuer",
		"APP_TOKEN_DURATION":           "1h",
		"APP_SECRET_HASH_KEY":          "secret_hash",
		"APP_OTP_TTL":                  "5m",
		"APP_RESET_TOKEN_TTL":          "20m",
		"APP_RESET_URL":                "https://aura.example/reset",
		"APP_PASSWORD_COST":            "12",
		"APP_PRODUCTION":               "true",
		"APP_VERSION":                  "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_ALLOWED_ORIGINS": "http://a.example,http://b.example",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:aura.db",

		"ADAPTER_MAIL_SMTP_HOST": "smtp.example",
		"ADAPTER_MAIL_SMTP_PORT": "2525",
		"ADAPTER_MAIL_USERNAME":  "mailer",
		"ADAPTER_MAIL_PASSWORD":  "mailpass",
		"ADAPTER_MAIL_FROM":      "Aura <hi@aura.example>",

		"WORKERS_MAIL_QUEUE_SIZE": "10",
		"WORKERS_MAIL_WORKERS":    "4",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff", cfg.App.EncryptionKey)
	assert.Equal(t, []string{"aa", "bb"}, cfg.App.PreviousEncryptionKeys)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "secret_hash", cfg.App.SecretHashKey)
	assert.Equal(t, 5*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, 20*time.Minute, cfg.App.ResetTokenTTL)
	assert.Equal(t, "https://aura.example/reset", cfg.App.ResetURL)
	assert.Equal(t, 12, cfg.App.PasswordCost)
	assert.True(t, cfg.App.Production)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:aura.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "smtp.example", cfg.Adapter.Mail.SMTPHost)
	assert.Equal(t, 2525, cfg.Adapter.Mail.SMTPPort)
	assert.Equal(t, "mailer", cfg.Adapter.Mail.Username)
	assert.Equal(t, "mailpass", cfg.Adapter.Mail.Password)
	assert.Equal(t, "Aura <hi@aura.example>", cfg.Adapter.Mail.From)

	assert.Equal(t, 10, cfg.Workers.MailQueueSize)
	assert.Equal(t, 4, cfg.Workers.MailWorkers)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.EncryptionKey)
	assert.Empty(t, cfg.App.SecretHashKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, "aura", cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, 15*time.Minute, cfg.App.ResetTokenTTL)
	assert.Equal(t, "http://localhost:3000/reset-password", cfg.App.ResetURL)
	assert.Equal(t, 10, cfg.App.PasswordCost)
	assert.False(t, cfg.App.Production)

	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)

	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Empty(t, cfg.Storage.DB.DSN)

	assert.Equal(t, 587, cfg.Adapter.Mail.SMTPPort)
	assert.Empty(t, cfg.Adapter.Mail.SMTPHost)
	assert.Empty(t, cfg.Adapter.Mail.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.Mail.Timeout)

	assert.Equal(t, 100, cfg.Workers.MailQueueSize)
	assert.Equal(t, 2, cfg.Workers.MailWorkers)
}

func TestParseEnv_OnlyStorageDB(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/testdb",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/testdb", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	envVars := map[string]string{
		"WORKERS_MAIL_WORKERS": "many",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_ENCRYPTION_KEY",
		"APP_PREVIOUS_ENCRYPTION_KEYS",
		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_SECRET_HASH_KEY",
		"APP_OTP_TTL",
		"APP_RESET_TOKEN_TTL",
		"APP_RESET_URL",
		"APP_PASSWORD_COST",
		"APP_PRODUCTION",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_ALLOWED_ORIGINS",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",

		"ADAPTER_MAIL_SMTP_HOST",
		"ADAPTER_MAIL_SMTP_PORT",
		"ADAPTER_MAIL_USERNAME",
		"ADAPTER_MAIL_PASSWORD",
		"ADAPTER_MAIL_FROM",
		"ADAPTER_MAIL_API_URL",
		"ADAPTER_MAIL_API_TOKEN",
		"ADAPTER_MAIL_TIMEOUT",

		"WORKERS_MAIL_QUEUE_SIZE",
		"WORKERS_MAIL_WORKERS",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
