package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/matchweek"
)

type matchWeekKey struct {
	leagueSeasonID int64
	weekNumber     int
}

type MatchWeekRepository struct {
	mu     sync.RWMutex
	nextID int64
	weeks  map[matchWeekKey]matchweek.MatchWeek
}

func NewMatchWeekRepository() *MatchWeekRepository {
	return &MatchWeekRepository{weeks: make(map[matchWeekKey]matchweek.MatchWeek)}
}

func (r *MatchWeekRepository) Find(_ context.Context, leagueSeasonID int64, weekNumber int) (matchweek.MatchWeek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.weeks[matchWeekKey{leagueSeasonID: leagueSeasonID, weekNumber: weekNumber}]
	return item, ok, nil
}

func (r *MatchWeekRepository) Create(_ context.Context, item matchweek.MatchWeek) (matchweek.MatchWeek, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := matchWeekKey{leagueSeasonID: item.LeagueSeasonID, weekNumber: item.WeekNumber}
	if _, ok := r.weeks[key]; ok {
		return matchweek.MatchWeek{}, uniqueViolation("match week %d/%d", item.LeagueSeasonID, item.WeekNumber)
	}
	r.nextID++
	item.ID = r.nextID
	r.weeks[key] = item
	return item, nil
}

func (r *MatchWeekRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.weeks)
}
