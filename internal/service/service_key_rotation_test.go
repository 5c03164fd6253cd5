package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/mock"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestKeyRotation(t *testing.T) (KeyRotationService, *mock.MockEntryRepository, *mock.MockContentCipher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	entries := mock.NewMockEntryRepository(ctrl)
	cipher := mock.NewMockContentCipher(ctrl)

	return NewKeyRotationService(entries, cipher, logger.Nop()), entries, cipher
}

func TestReencryptEntries_ClassifiesEveryEntry(t *testing.T) {
	svc, entries, cipher := newTestKeyRotation(t)
	ctx := context.Background()

	gomock.InOrder(
		entries.EXPECT().ListEntriesPage(ctx, "", uint64(2)).Return([]models.Entry{
			{ID: "a", Content: "current"},
			{ID: "b", Content: "retired"},
		}, nil),
		entries.EXPECT().ListEntriesPage(ctx, "b", uint64(2)).Return([]models.Entry{
			{ID: "c", Content: "garbage"},
			{ID: "d", Content: "retired-raced"},
		}, nil),
		entries.EXPECT().ListEntriesPage(ctx, "d", uint64(2)).Return([]models.Entry{}, nil),
	)

	cipher.EXPECT().Open("current").Return("one", 0, nil)
	cipher.EXPECT().Open("retired").Return("two", 1, nil)
	cipher.EXPECT().Open("garbage").Return("", -1, crypto.ErrUndecryptable)
	cipher.EXPECT().Open("retired-raced").Return("four", 2, nil)
	cipher.EXPECT().Encrypt("two").Return("two-new", nil)
	cipher.EXPECT().Encrypt("four").Return("four-new", nil)

	entries.EXPECT().UpdateEntryContent(ctx, "b", "retired", "two-new").Return(nil)
	entries.EXPECT().UpdateEntryContent(ctx, "d", "retired-raced", "four-new").Return(store.ErrEntryChanged)

	report, err := svc.ReencryptEntries(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, models.ReencryptReport{Scanned: 4, Rewritten: 1, Current: 1, Undecryptable: 1, Conflicts: 1}, report)
}

func TestReencryptEntries_ShortPageStops(t *testing.T) {
	svc, entries, cipher := newTestKeyRotation(t)

	entries.EXPECT().ListEntriesPage(gomock.Any(), "", uint64(DefaultReencryptBatchSize)).
		Return([]models.Entry{{ID: "a", Content: "x"}}, nil)
	cipher.EXPECT().Open("x").Return("x", 0, nil)

	report, err := svc.ReencryptEntries(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Current)
}

func TestReencryptEntries_UpdateFails(t *testing.T) {
	svc, entries, cipher := newTestKeyRotation(t)
	dbErr := errors.New("db down")

	entries.EXPECT().ListEntriesPage(gomock.Any(), "", uint64(10)).Return([]models.Entry{{ID: "a", Content: "old"}}, nil)
	cipher.EXPECT().Open("old").Return("text", 1, nil)
	cipher.EXPECT().Encrypt("text").Return("new", nil)
	entries.EXPECT().UpdateEntryContent(gomock.Any(), "a", "old", "new").Return(dbErr)

	report, err := svc.ReencryptEntries(context.Background(), 10)

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, report.Scanned)
	assert.Zero(t, report.Rewritten)
}

func TestReencryptEntries_CancelledContext(t *testing.T) {
	svc, _, _ := newTestKeyRotation(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ReencryptEntries(ctx, 10)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestReencryptEntries_RealCipher_RewritesUnderPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockEntryRepository(ctrl)
	oldCipher := mustCipher(testRetiredKey)
	rotated := mustCipher(testPrimaryKey, testRetiredKey)
	svc := NewKeyRotationService(entries, rotated, logger.Nop())

	record, err := oldCipher.Encrypt("remember this")
	require.NoError(t, err)

	var rewritten string
	entries.EXPECT().ListEntriesPage(gomock.Any(), "", uint64(10)).Return([]models.Entry{{ID: "a", Content: record}}, nil)
	entries.EXPECT().UpdateEntryContent(gomock.Any(), "a", record, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, newContent string) error {
			rewritten = newContent
			return nil
		})

	report, err := svc.ReencryptEntries(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Rewritten)

	primaryOnly := mustCipher(testPrimaryKey)
	plaintext, idx, err := primaryOnly.Open(rewritten)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "remember this", plaintext)
	assert.Equal(t, crypto.EncryptedPlaceholder, mustCipher(testForeignKey).Decrypt(rewritten))
}
