package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/club"
)

type clubSeasonKey struct {
	clubID         int64
	leagueSeasonID int64
}

type ClubRepository struct {
	mu           sync.RWMutex
	nextID       int64
	nextSeasonID int64
	byName       map[string]club.Club
	seasons      map[clubSeasonKey]club.Season
	seeded       int
}

func NewClubRepository(seed ...club.Club) *ClubRepository {
	r := &ClubRepository{
		byName:  make(map[string]club.Club),
		seasons: make(map[clubSeasonKey]club.Season),
		seeded:  len(seed),
	}
	for _, item := range seed {
		r.byName[item.Name] = item
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *ClubRepository) FindByName(_ context.Context, name string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byName[name]
	return item, ok, nil
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) (club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[item.Name]; ok {
		return club.Club{}, uniqueViolation("club %q", item.Name)
	}
	r.nextID++
	item.ID = r.nextID
	r.byName[item.Name] = item
	return item, nil
}

func (r *ClubRepository) FindSeason(_ context.Context, clubID, leagueSeasonID int64) (club.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[clubSeasonKey{clubID: clubID, leagueSeasonID: leagueSeasonID}]
	return item, ok, nil
}

func (r *ClubRepository) CreateSeason(_ context.Context, item club.Season) (club.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := clubSeasonKey{clubID: item.ClubID, leagueSeasonID: item.LeagueSeasonID}
	if _, ok := r.seasons[key]; ok {
		return club.Season{}, uniqueViolation("club season %d/%d", item.ClubID, item.LeagueSeasonID)
	}
	r.nextSeasonID++
	item.ID = r.nextSeasonID
	r.seasons[key] = item
	return item, nil
}

func (r *ClubRepository) Clubs() []club.Club {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.byName))
	for _, item := range r.byName {
		out = append(out, item)
	}
	return out
}

// Writes counts clubs and club seasons created after construction.
func (r *ClubRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName) - r.seeded + len(r.seasons)
}
