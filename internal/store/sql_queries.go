package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/aura/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable        = models.User{}.TableName()
	entriesTable      = models.Entry{}.TableName()
	verificationTable = models.VerificationCode{}.TableName()

	userColumns         = []string{"id", "email", "name", "password_hash", "verified", "dob", "gender", "created_at", "updated_at"}
	entryColumns        = []string{"id", "user_id", "mood", "content", "created_at"}
	verificationColumns = []string{"user_id", "purpose", "secret_hash", "expires_at", "created_at"}
)

const upsertVerificationSuffix = `ON CONFLICT (user_id, purpose) DO UPDATE SET
	secret_hash = EXCLUDED.secret_hash,
	expires_at = EXCLUDED.expires_at,
	created_at = EXCLUDED.created_at`

// users

func insertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(u.UserID, u.Email, u.Name, u.PasswordHash, u.Verified, nullTime(u.DateOfBirth), nullString(u.Gender), u.CreatedAt, u.UpdatedAt).
		ToSql()
}

func selectUserByQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func updateUnverifiedUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", u.Name).
		Set("password_hash", u.PasswordHash).
		Set("updated_at", u.UpdatedAt).
		Where(sq.And{sq.Eq{"id": u.UserID}, sq.Eq{"verified": false}}).
		ToSql()
}

func markUserVerifiedQuery(b sq.StatementBuilderType, userID string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("verified", true).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func updateProfileQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", u.Name).
		Set("dob", nullTime(u.DateOfBirth)).
		Set("gender", nullString(u.Gender)).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.UserID}).
		ToSql()
}

func updatePasswordHashQuery(b sq.StatementBuilderType, userID, hash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", hash).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func deleteByUserQuery(b sq.StatementBuilderType, table, column, userID string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{column: userID}).
		ToSql()
}

// entries

func insertEntryQuery(b sq.StatementBuilderType, e models.Entry) (string, []any, error) {
	return b.Insert(entriesTable).
		Columns(entryColumns...).
		Values(e.ID, e.UserID, e.Mood, e.Content, e.CreatedAt).
		ToSql()
}

func selectEntryByIDQuery(b sq.StatementBuilderType, entryID string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func selectEntriesByUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func deleteEntryQuery(b sq.StatementBuilderType, entryID, userID string) (string, []any, error) {
	return b.Delete(entriesTable).
		Where(sq.And{sq.Eq{"id": entryID}, sq.Eq{"user_id": userID}}).
		ToSql()
}

func selectEntriesPageQuery(b sq.StatementBuilderType, afterID string, limit uint64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(limit).
		ToSql()
}

func updateEntryContentQuery(b sq.StatementBuilderType, entryID, oldContent, newContent string) (string, []any, error) {
	return b.Update(entriesTable).
		Set("content", newContent).
		Where(sq.And{sq.Eq{"id": entryID}, sq.Eq{"content": oldContent}}).
		ToSql()
}

// verification codes

func upsertVerificationQuery(b sq.StatementBuilderType, c models.VerificationCode) (string, []any, error) {
	return b.Insert(verificationTable).
		Columns(verificationColumns...).
		Values(c.UserID, string(c.Purpose), c.SecretHash, c.ExpiresAt, c.CreatedAt).
		Suffix(upsertVerificationSuffix).
		ToSql()
}

func selectVerificationQuery(b sq.StatementBuilderType, userID string, purpose models.VerificationPurpose) (string, []any, error) {
	return b.Select(verificationColumns...).
		From(verificationTable).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"purpose": string(purpose)}}).
		ToSql()
}

func selectVerificationBySecretQuery(b sq.StatementBuilderType, purpose models.VerificationPurpose, secretHash string) (string, []any, error) {
	return b.Select(verificationColumns...).
		From(verificationTable).
		Where(sq.And{sq.Eq{"purpose": string(purpose)}, sq.Eq{"secret_hash": secretHash}}).
		ToSql()
}

func consumeVerificationQuery(b sq.StatementBuilderType, userID string, purpose models.VerificationPurpose, secretHash string) (string, []any, error) {
	return b.Delete(verificationTable).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"purpose": string(purpose)}, sq.Eq{"secret_hash": secretHash}}).
		ToSql()
}

// helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u      models.User
		dob    sql.NullTime
		gender sql.NullString
	)
	if err := row.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.Verified, &dob, &gender, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}

	if dob.Valid {
		t := time.Date(dob.Time.Year(), dob.Time.Month(), dob.Time.Day(), 0, 0, 0, 0, time.UTC)
		u.DateOfBirth = &t
	}
	if gender.Valid {
		u.Gender = &gender.String
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()

	return u, nil
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	if err := row.Scan(&e.ID, &e.UserID, &e.Mood, &e.Content, &e.CreatedAt); err != nil {
		return models.Entry{}, err
	}
	e.CreatedAt = e.CreatedAt.UTC()

	return e, nil
}

func scanVerification(row rowScanner) (models.VerificationCode, error) {
	var (
		c       models.VerificationCode
		purpose string
	)
	if err := row.Scan(&c.UserID, &purpose, &c.SecretHash, &c.ExpiresAt, &c.CreatedAt); err != nil {
		return models.VerificationCode{}, err
	}
	c.Purpose = models.VerificationPurpose(purpose)
	c.ExpiresAt = c.ExpiresAt.UTC()
	c.CreatedAt = c.CreatedAt.UTC()

	return c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
