package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/gkperf"
)

type GKPerfRepository struct {
	mu        sync.RWMutex
	nextID    int64
	byFixture map[int64]gkperf.Performance
}

func NewGKPerfRepository() *GKPerfRepository {
	return &GKPerfRepository{byFixture: make(map[int64]gkperf.Performance)}
}

func (r *GKPerfRepository) GetByFixture(_ context.Context, fixtureID int64) (gkperf.Performance, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byFixture[fixtureID]
	return item, ok, nil
}

func (r *GKPerfRepository) Create(_ context.Context, item gkperf.Performance) (gkperf.Performance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byFixture[item.FixtureID]; ok {
		return gkperf.Performance{}, uniqueViolation("goalkeeper performance for fixture %d", item.FixtureID)
	}
	r.nextID++
	item.ID = r.nextID
	r.byFixture[item.FixtureID] = item
	return item, nil
}

func (r *GKPerfRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFixture)
}
