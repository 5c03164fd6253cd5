package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string {
	return f.id
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := WrapDB(conn, config.DriverPostgres, logger.Nop())
	db.clock = func() time.Time { return testNow }

	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "email", "name", "password_hash", "verified", "dob", "gender", "created_at", "updated_at"}

func userRow(id, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userRowColumns).
		AddRow(id, email, "Ann", "hash", true, nil, nil, testNow, testNow)
}

var entryRowColumns = []string{"id", "user_id", "mood", "content", "created_at"}

var codeRowColumns = []string{"user_id", "purpose", "secret_hash", "expires_at", "created_at"}

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open(config.DriverSQLite, sqliteDSN("file::memory:"))
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db := WrapDB(conn, config.DriverSQLite, logger.Nop())
	require.NoError(t, db.Migrate())

	// strictly increasing clock keeps ordering deterministic
	tick := testNow
	db.clock = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	return db
}
