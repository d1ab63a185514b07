// Package random provides seeding helpers for per-request generators.
//
// Seeds come from crypto/rand so concurrent requests never share or
// predict each other's math/rand streams.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a generator seeded from crypto/rand.
//
// If the system entropy source fails, the generator is seeded from the
// clock instead and the failure is logged; callers always get a usable
// generator.
func NewRand() *rand.Rand {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
		log.Printf("random: falling back to clock seed: %v", err)
	}
	return rand.New(rand.NewSource(seed))
}
