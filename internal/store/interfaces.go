package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/aura/models"
)

// IDGenerator issues primary keys for new rows.
type IDGenerator interface {
	Generate() string
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with ID and timestamps
	// assigned. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UpdateUnverifiedUser overwrites name and password hash of a user that
	// has not verified its email yet.
	UpdateUnverifiedUser(ctx context.Context, user models.User) (models.User, error)
	MarkUserVerified(ctx context.Context, userID string) error
	// UpdateProfile writes name, date of birth and gender.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	// DeleteUser removes the user with all entries and pending codes in one
	// transaction.
	DeleteUser(ctx context.Context, userID string) error
}

// EntryRepository persists encrypted journal entries.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	FindEntryByID(ctx context.Context, entryID string) (models.Entry, error)
	// ListEntriesByUser returns the owner's entries newest first.
	ListEntriesByUser(ctx context.Context, userID string) ([]models.Entry, error)
	// DeleteEntry removes the entry only when it belongs to userID.
	DeleteEntry(ctx context.Context, entryID, userID string) error
	// ListEntriesPage walks all entries in ID order, starting after afterID.
	ListEntriesPage(ctx context.Context, afterID string, limit uint64) ([]models.Entry, error)
	// UpdateEntryContent swaps the stored record when it still equals
	// oldContent. Used only for key rotation.
	UpdateEntryContent(ctx context.Context, entryID, oldContent, newContent string) error
}

// VerificationRepository persists hashed one-time secrets.
type VerificationRepository interface {
	// SaveCode inserts or replaces the code for (UserID, Purpose).
	SaveCode(ctx context.Context, code models.VerificationCode) error
	FindCode(ctx context.Context, userID string, purpose models.VerificationPurpose) (models.VerificationCode, error)
	FindCodeBySecret(ctx context.Context, purpose models.VerificationPurpose, secretHash string) (models.VerificationCode, error)
	// ConsumeCode deletes the code only if the hash still matches. Exactly
	// one caller can consume a given secret.
	ConsumeCode(ctx context.Context, userID string, purpose models.VerificationPurpose, secretHash string) error
	DeleteCodes(ctx context.Context, userID string) error
}
