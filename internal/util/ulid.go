package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRequestID returns a ULID string used to tag a single HTTP request.
func NewRequestID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// IsRequestID reports whether s parses as a ULID, so client supplied ids can be
// passed through instead of regenerated.
func IsRequestID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
