package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// ContentCipher protects journal entry content at rest.
//
// Records have the textual form hex(iv) ":" hex(ciphertext). The cipher owns
// one primary key, used for every new record, and an ordered list of retired
// keys that are still accepted when reading.
type ContentCipher interface {
	// Encrypt seals plaintext under the primary key with a fresh random IV.
	// The same plaintext yields a different record on every call.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a record. It never fails: any record that cannot be
	// opened with any known key yields [EncryptedPlaceholder].
	Decrypt(record string) string

	// Open opens a record and reports which key succeeded: 0 is the primary
	// key, 1..n are the retired keys in configuration order.
	Open(record string) (plaintext string, keyIndex int, err error)
}

// PasswordHasher produces and checks salted adaptive password hashes.
type PasswordHasher interface {
	// Hash returns a self-describing hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash.
	Verify(hash, password string) bool
}

// SecretGenerator produces one-time secrets delivered to users by mail.
type SecretGenerator interface {
	// OTP returns a uniformly random 6-digit decimal passcode.
	OTP() (string, error)

	// ResetToken returns 32 random bytes encoded as 64 lowercase hex characters.
	ResetToken() (string, error)
}
