package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for reproducible resampling
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation.
	// Two calls with the same name and seed yield identical streams.
	SeededStream(name string, seed int64) *rand.Rand

	// Stream creates a generator for a named operation seeded from the clock.
	Stream(name string) *rand.Rand
}
