package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// GenerateUUID returns a random UUID-shaped identifier, used for review ids.
func GenerateUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// NewDatasetVersion returns a monotonically fresh dataset version tag. The
// resolution cache keys embed it, so bumping the version orphans every stale
// entry without an explicit purge.
func NewDatasetVersion() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%d-%x", time.Now().Unix(), b)
}
