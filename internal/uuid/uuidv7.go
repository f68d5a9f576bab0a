// Package uuid generates the time-ordered identifiers used as request ids.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 ids sort by creation time, so request
// ids in the logs line up with request order. Falls back to UUIDv4 when the
// random source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Normalize parses s and returns it in canonical lower-case form.
// ok is false when s is not a UUID.
func Normalize(s string) (string, bool) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
