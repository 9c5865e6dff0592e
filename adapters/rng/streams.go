package rng

import (
	"math/rand"
	"time"

	"hypokit/ports"
)

// Streams implements ports.RNGPort with named, seed-mixed generators
type Streams struct {
	now func() time.Time
}

var _ ports.RNGPort = (*Streams)(nil)

// NewStreams creates an RNG adapter
func NewStreams() *Streams {
	return &Streams{now: time.Now}
}

// SeededStream creates a deterministic generator for a named operation.
// The name is mixed into the seed so different operations sharing a base seed
// draw independent sequences.
func (s *Streams) SeededStream(name string, seed int64) *rand.Rand {
	if name != "" {
		seed = int64(hashString(name)) + seed
	}
	return rand.New(rand.NewSource(seed))
}

// Stream creates a generator seeded from the clock
func (s *Streams) Stream(name string) *rand.Rand {
	return s.SeededStream(name, s.now().UnixNano())
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
