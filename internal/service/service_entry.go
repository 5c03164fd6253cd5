package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/models"
)

type entryService struct {
	entryRepository store.EntryRepository
	cipher          crypto.ContentCipher

	logger *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, cipher crypto.ContentCipher, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		cipher:          cipher,
		logger:          logger,
	}
}

// Create encrypts the content under the primary key and stores the entry.
// The returned entry carries the ciphertext, not the plaintext.
func (e *entryService) Create(ctx context.Context, userID string, req models.CreateEntryRequest) (models.Entry, error) {
	log := logger.FromContext(ctx)

	ciphertext, err := e.cipher.Encrypt(req.Content)
	if err != nil {
		log.Err(err).Str("func", "*entryService.Create").Msg("encryption failed")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	entry, err := e.entryRepository.CreateEntry(ctx, models.Entry{
		UserID:  userID,
		Mood:    strings.TrimSpace(req.Mood),
		Content: ciphertext,
	})
	if err != nil {
		log.Err(err).Str("func", "*entryService.Create").Str("user_id", userID).Msg("saving entry failed")
		return models.Entry{}, fmt.Errorf("saving entry failed: %w", err)
	}

	return entry, nil
}

// List returns the owner's entries newest first with content decrypted.
// Records that do not decrypt carry the placeholder text.
func (e *entryService) List(ctx context.Context, userID string) ([]models.Entry, error) {
	entries, err := e.entryRepository.ListEntriesByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.List").Str("user_id", userID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	for i := range entries {
		entries[i].Content = e.cipher.Decrypt(entries[i].Content)
	}

	return entries, nil
}

func (e *entryService) Get(ctx context.Context, userID, entryID string) (models.Entry, error) {
	entry, err := e.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return models.Entry{}, err
	}

	entry.Content = e.cipher.Decrypt(entry.Content)
	return entry, nil
}

// Delete removes an entry of the owner. A missing entry and someone else's
// entry are reported differently.
func (e *entryService) Delete(ctx context.Context, userID, entryID string) error {
	log := logger.FromContext(ctx)

	if _, err := e.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	err := e.entryRepository.DeleteEntry(ctx, entryID, userID)
	if errors.Is(err, store.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryService.Delete").Str("entry_id", entryID).Msg("deleting entry failed")
		return fmt.Errorf("deleting entry failed: %w", err)
	}

	return nil
}

func (e *entryService) ownedEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := e.entryRepository.FindEntryByID(ctx, entryID)
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryService.ownedEntry").Str("entry_id", entryID).Msg("entry lookup failed")
		return models.Entry{}, fmt.Errorf("entry lookup failed: %w", err)
	}

	if entry.UserID != userID {
		log.Warn().Str("entry_id", entryID).Str("user_id", userID).Msg("access to foreign entry denied")
		return models.Entry{}, ErrAccessDenied
	}

	return entry, nil
}
