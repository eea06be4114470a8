package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
)

type MatchEventRepository struct {
	mu     sync.RWMutex
	nextID int64
	events []matchevent.Event
	keys   map[string]struct{}
}

func NewMatchEventRepository(seed ...matchevent.Event) *MatchEventRepository {
	r := &MatchEventRepository{keys: make(map[string]struct{})}
	for _, item := range seed {
		r.events = append(r.events, item)
		r.keys[item.NaturalKey()] = struct{}{}
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *MatchEventRepository) Create(_ context.Context, item matchevent.Event) (matchevent.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.NaturalKey()
	if _, ok := r.keys[key]; ok {
		return matchevent.Event{}, uniqueViolation("match event %s", key)
	}
	r.nextID++
	item.ID = r.nextID
	r.events = append(r.events, item)
	r.keys[key] = struct{}{}
	return item, nil
}

func (r *MatchEventRepository) CountMissingMinuteText(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, item := range r.events {
		if item.Minute != nil && item.MinuteText == nil {
			n++
		}
	}
	return n, nil
}

func (r *MatchEventRepository) BackfillMinuteText(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for i := range r.events {
		item := &r.events[i]
		if item.Minute == nil || item.MinuteText != nil {
			continue
		}
		text := strconv.Itoa(*item.Minute)
		item.MinuteText = &text
		n++
	}
	return n, nil
}

func (r *MatchEventRepository) List() []matchevent.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]matchevent.Event(nil), r.events...)
}

func (r *MatchEventRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}
