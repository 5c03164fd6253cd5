package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_SQLiteInMemory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: "file::memory:"}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.EntryRepository)
	assert.NotNil(t, s.VerificationRepository)
	assert.Equal(t, config.DriverSQLite, s.db.Driver())
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "file:aura.db", want: "file:aura.db?_foreign_keys=on"},
		{in: "file:aura.db?cache=shared", want: "file:aura.db?cache=shared&_foreign_keys=on"},
		{in: "file:aura.db?_foreign_keys=off", want: "file:aura.db?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}

func TestPlaceholderFormatFollowsDriver(t *testing.T) {
	pg := WrapDB(nil, config.DriverPostgres, logger.Nop())
	query, _, err := selectUserByQuery(pg.builder, "email", "a@b.c")
	require.NoError(t, err)
	assert.Contains(t, query, "email = $1")

	lite := WrapDB(nil, config.DriverSQLite, logger.Nop())
	query, _, err = selectUserByQuery(lite.builder, "email", "a@b.c")
	require.NoError(t, err)
	assert.Contains(t, query, "email = ?")
}
