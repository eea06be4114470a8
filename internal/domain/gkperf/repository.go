package gkperf

import "context"

// Repository describes goalkeeper-performance persistence needs.
type Repository interface {
	GetByFixture(ctx context.Context, fixtureID int64) (Performance, bool, error)
	Create(ctx context.Context, item Performance) (Performance, error)
}
