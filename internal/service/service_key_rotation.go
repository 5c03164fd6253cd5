// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/models"
)

// DefaultReencryptBatchSize is used when ReencryptEntries gets zero.
const DefaultReencryptBatchSize = 500

type keyRotationService struct {
	entryRepository store.EntryRepository
	cipher          crypto.ContentCipher

	logger *logger.Logger
}

func NewKeyRotationService(entryRepository store.EntryRepository, cipher crypto.ContentCipher, logger *logger.Logger) KeyRotationService {
	return &keyRotationService{
		entryRepository: entryRepository,
		cipher:          cipher,
		logger:          logger,
	}
}

// ReencryptEntries walks every entry in ID order and rewrites those that
// open under a previous key. Each rewrite is conditional on the stored
// record being unchanged, so the pass can run next to a live server.
func (k *keyRotationService) ReencryptEntries(ctx context.Context, batchSize uint64) (models.ReencryptReport, error) {
	if batchSize == 0 {
		batchSize = DefaultReencryptBatchSize
	}

	var (
		report models.ReencryptReport
		after  string
	)
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		page, err := k.entryRepository.ListEntriesPage(ctx, after, batchSize)
		if err != nil {
			return report, fmt.Errorf("listing entries failed: %w", err)
		}

		for _, entry := range page {
			if err = k.reencrypt(ctx, entry, &report); err != nil {
				return report, err
			}
		}

		if uint64(len(page)) < batchSize {
			break
		}
		after = page[len(page)-1].ID
	}

	k.logger.Info().
		Int("scanned", report.Scanned).
		Int("rewritten", report.Rewritten).
		Int("current", report.Current).
		Int("undecryptable", report.Undecryptable).
		Int("conflicts", report.Conflicts).
		Msg("re-encryption finished")

	return report, nil
}

func (k *keyRotationService) reencrypt(ctx context.Context, entry models.Entry, report *models.ReencryptReport) error {
	report.Scanned++

	plaintext, keyIndex, err := k.cipher.Open(entry.Content)
	switch {
	case err != nil:
		report.Undecryptable++
		k.logger.Warn().Str("entry_id", entry.ID).Msg("entry does not open under any configured key")
		return nil
	case keyIndex == 0:
		report.Current++
		return nil
	}

	ciphertext, err := k.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	err = k.entryRepository.UpdateEntryContent(ctx, entry.ID, entry.Content, ciphertext)
	switch {
	case errors.Is(err, store.ErrEntryChanged):
		report.Conflicts++
	case err != nil:
		return fmt.Errorf("rewriting entry %s failed: %w", entry.ID, err)
	default:
		report.Rewritten++
	}

	return nil
}
