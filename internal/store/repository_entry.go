package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

// entryRepository stores journal entries as opaque ciphertext records. It
// never sees plaintext.
type entryRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewEntryRepository(db *DB, ids IDGenerator, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry.ID = r.ids.Generate()
	entry.CreatedAt = r.db.now()

	query, args, err := insertEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error inserting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *entryRepository) FindEntryByID(ctx context.Context, entryID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEntryByIDQuery(r.db.builder, entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.FindEntryByID").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	err = r.db.withRetry(ctx, func() error {
		entry, err = scanEntry(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.FindEntryByID").Msg("error scanning entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntriesByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEntriesByUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntriesByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "*entryRepository.ListEntriesByUser", query, args)
}

// DeleteEntry removes the entry only if it is owned by userID. A missing
// or foreign entry yields [ErrEntryNotFound].
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteEntryQuery(r.db.builder, entryID, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execOne(ctx, r.db, query, args, ErrEntryNotFound); err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return err
	}

	return nil
}

func (r *entryRepository) ListEntriesPage(ctx context.Context, afterID string, limit uint64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEntriesPageQuery(r.db.builder, afterID, limit)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntriesPage").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "*entryRepository.ListEntriesPage", query, args)
}

// UpdateEntryContent replaces the stored record only while it still equals
// oldContent, otherwise [ErrEntryChanged] is returned.
func (r *entryRepository) UpdateEntryContent(ctx context.Context, entryID, oldContent, newContent string) error {
	log := logger.FromContext(ctx)

	query, args, err := updateEntryContentQuery(r.db.builder, entryID, oldContent, newContent)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntryContent").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execOne(ctx, r.db, query, args, ErrEntryChanged); err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntryContent").Msg("error rewriting entry")
		return err
	}

	return nil
}

func (r *entryRepository) queryEntries(ctx context.Context, funcName, query string, args []any) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	err := r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating entries")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
