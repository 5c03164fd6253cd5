package models

// ReencryptReport summarises one key rotation pass over all entries.
type ReencryptReport struct {
	// Scanned is the number of entries read.
	Scanned int `json:"scanned"`

	// Rewritten entries were decrypted with a previous key and stored again
	// under the primary key.
	Rewritten int `json:"rewritten"`

	// Current entries were already encrypted with the primary key.
	Current int `json:"current"`

	// Undecryptable entries opened under no key in the ring. They are left
	// untouched.
	Undecryptable int `json:"undecryptable"`

	// Conflicts counts entries deleted or changed while the pass was running.
	Conflicts int `json:"conflicts"`
}
