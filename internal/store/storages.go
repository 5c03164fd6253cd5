package store

import (
	"context"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/utils"
)

// Storages groups every repository the services depend on, all sharing one
// database handle.
type Storages struct {
	UserRepository         UserRepository
	EntryRepository        EntryRepository
	VerificationRepository VerificationRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an existing handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:         NewUserRepository(db, ids, log),
		EntryRepository:        NewEntryRepository(db, ids, log),
		VerificationRepository: NewVerificationRepository(db, log),
		db:                     db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
