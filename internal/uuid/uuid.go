// Package uuid generates UUIDv7 identifiers for database primary keys.
// UUIDv7 is time-ordered, which keeps index inserts roughly sequential.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new UUIDv7 string. If v7 generation fails (entropy
// exhaustion), it falls back to a random v4.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
