// Package utils holds small helpers shared by the actor packages.
package utils

import "github.com/google/uuid"

// RunIDGenerator produces identifiers that tag every log entry of one run.
type RunIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

// NewRunIDGenerator returns a generator backed by time-ordered UUIDv7 values,
// so run ids sort by start time.
func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a new run id. A random UUIDv4 is used when the clock
// based variant cannot be produced.
func (g *RunIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
