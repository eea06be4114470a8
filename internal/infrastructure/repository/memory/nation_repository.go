package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/nation"
	"github.com/riskibarqy/football-stats/internal/domain/season"
)

type NationRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]nation.Nation
}

func NewNationRepository(seed ...nation.Nation) *NationRepository {
	r := &NationRepository{byName: make(map[string]nation.Nation)}
	for _, item := range seed {
		r.byName[item.Name] = item
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *NationRepository) FindByName(_ context.Context, name string) (nation.Nation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byName[name]
	return item, ok, nil
}

func (r *NationRepository) Create(_ context.Context, item nation.Nation) (nation.Nation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[item.Name]; ok {
		return nation.Nation{}, uniqueViolation("nation %q", item.Name)
	}
	r.nextID++
	item.ID = r.nextID
	r.byName[item.Name] = item
	return item, nil
}

func (r *NationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

type SeasonRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]season.Season
}

func NewSeasonRepository(seed ...season.Season) *SeasonRepository {
	r := &SeasonRepository{byName: make(map[string]season.Season)}
	for _, item := range seed {
		r.byName[item.Name] = item
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *SeasonRepository) FindByName(_ context.Context, name string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byName[name]
	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[item.Name]; ok {
		return season.Season{}, uniqueViolation("season %q", item.Name)
	}
	r.nextID++
	item.ID = r.nextID
	r.byName[item.Name] = item
	return item, nil
}

func (r *SeasonRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
