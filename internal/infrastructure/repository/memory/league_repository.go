package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/league"
)

type leagueSeasonKey struct {
	leagueID int64
	seasonID int64
}

type LeagueRepository struct {
	mu           sync.RWMutex
	nextID       int64
	nextSeasonID int64
	leagues      map[int64]league.League
	seasons      map[leagueSeasonKey]league.Season
	seeded       int
}

func NewLeagueRepository(seed ...league.League) *LeagueRepository {
	r := &LeagueRepository{
		leagues: make(map[int64]league.League),
		seasons: make(map[leagueSeasonKey]league.Season),
		seeded:  len(seed),
	}
	for _, item := range seed {
		r.leagues[item.ID] = item
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *LeagueRepository) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[id]
	return item, ok, nil
}

func (r *LeagueRepository) FindByName(_ context.Context, name string, nationID *int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.leagues {
		if item.Name == name && sameID(item.NationID, nationID) {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) (league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.leagues {
		if existing.Name == item.Name && sameID(existing.NationID, item.NationID) {
			return league.League{}, uniqueViolation("league %q", item.Name)
		}
	}
	r.nextID++
	item.ID = r.nextID
	r.leagues[item.ID] = item
	return item, nil
}

func (r *LeagueRepository) FindSeason(_ context.Context, leagueID, seasonID int64) (league.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[leagueSeasonKey{leagueID: leagueID, seasonID: seasonID}]
	return item, ok, nil
}

func (r *LeagueRepository) CreateSeason(_ context.Context, item league.Season) (league.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := leagueSeasonKey{leagueID: item.LeagueID, seasonID: item.SeasonID}
	if _, ok := r.seasons[key]; ok {
		return league.Season{}, uniqueViolation("league season %d/%d", item.LeagueID, item.SeasonID)
	}
	r.nextSeasonID++
	item.ID = r.nextSeasonID
	r.seasons[key] = item
	return item, nil
}

// Writes counts leagues and league seasons created after construction.
func (r *LeagueRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leagues) - r.seeded + len(r.seasons)
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
