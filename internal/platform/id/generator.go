package id

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out identities for records that are never persisted.
type Generator interface {
	Next() int64
}

// PlaceholderGenerator returns strictly negative ids so they can never
// collide with BIGSERIAL keys.
type PlaceholderGenerator struct {
	last atomic.Int64
}

func NewPlaceholderGenerator() *PlaceholderGenerator {
	return &PlaceholderGenerator{}
}

func (g *PlaceholderGenerator) Next() int64 {
	return g.last.Add(-1)
}

// IsPlaceholder reports whether v came from a PlaceholderGenerator.
func IsPlaceholder(v int64) bool {
	return v < 0
}

// NewRunID tags one import run in logs and reports.
func NewRunID() string {
	return uuid.NewString()
}
