// Package id generates time-ordered unique identifiers for ledger records.
package id

import "github.com/google/uuid"

// New returns a new UUIDv7 string. UUIDv7 is time-ordered, which keeps
// insertion order roughly aligned with primary-key order in the database.
// Falls back to a random UUIDv4 if the system entropy source fails.
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
