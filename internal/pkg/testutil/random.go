package testutil

import (
	"io"
	"math/rand"
)

// SeededReader returns a deterministic byte stream for reproducible prime and key
// generation in tests. It must never be used outside of tests.
func SeededReader(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test randomness
}
