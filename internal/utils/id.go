package utils

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// entropy is shared across NewID calls. ulid.Monotonic guarantees
// strictly increasing ids within the same millisecond, which keeps
// session ids time-ordered even under rapid starts.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a ULID string. ULIDs are lexicographically sortable by
// creation time, so try-on sessions and directory users sort naturally
// without a separate timestamp column.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
