package usecase

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newID generates a ULID. Lexicographic order follows creation time, which
// the message ordering tie-break relies on.
func newID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
