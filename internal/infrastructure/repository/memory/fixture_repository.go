package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	nextID   int64
	fixtures []fixture.Fixture
}

func NewFixtureRepository(seed ...fixture.Fixture) *FixtureRepository {
	r := &FixtureRepository{}
	for _, item := range seed {
		r.fixtures = append(r.fixtures, item)
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *FixtureRepository) FindByKey(_ context.Context, key fixture.Key) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixtures {
		if matchesKey(item, key) {
			return item, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.fixtures {
		if existing.Key().String() == item.Key().String() {
			return fixture.Fixture{}, uniqueViolation("fixture %s", item.Key())
		}
	}
	r.nextID++
	item.ID = r.nextID
	r.fixtures = append(r.fixtures, item)
	return item, nil
}

func (r *FixtureRepository) List() []fixture.Fixture {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]fixture.Fixture(nil), r.fixtures...)
}

func (r *FixtureRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fixtures)
}

func matchesKey(item fixture.Fixture, key fixture.Key) bool {
	if item.LeagueSeasonID != key.LeagueSeasonID ||
		item.HomeClubSeasonID != key.HomeClubSeasonID ||
		item.AwayClubSeasonID != key.AwayClubSeasonID {
		return false
	}
	if key.Date == nil {
		return true
	}
	return item.Key().DateToken() == key.DateToken()
}
