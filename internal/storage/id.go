package storage

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewID creates a unique entry ID from the current nanosecond timestamp and
// a random suffix, both hex-encoded. Collision-resistant for human-paced,
// single-process entry creation; not cryptographically unique.
func NewID() string {
	return fmt.Sprintf("%x-%08x", time.Now().UnixNano(), rand.Uint32())
}
