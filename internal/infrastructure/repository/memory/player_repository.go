package memory

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players map[int64]player.Player
	updates int
}

func NewPlayerRepository(seed ...player.Player) *PlayerRepository {
	r := &PlayerRepository{players: make(map[int64]player.Player)}
	for _, item := range seed {
		r.players[item.ID] = item
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *PlayerRepository) FindByTransfermarktID(_ context.Context, transfermarktID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.TransfermarktID != nil && *item.TransfermarktID == transfermarktID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) FindByLastName(_ context.Context, lastName string, dateOfBirth *time.Time) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		found player.Player
		ok    bool
	)
	for _, item := range r.players {
		if item.LastName != lastName {
			continue
		}
		if dateOfBirth != nil && (item.DateOfBirth == nil || !sameDay(*item.DateOfBirth, *dateOfBirth)) {
			continue
		}
		if !ok || item.ID < found.ID {
			found, ok = item, true
		}
	}
	return found, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.TransfermarktID != nil {
		for _, existing := range r.players {
			if existing.TransfermarktID != nil && *existing.TransfermarktID == *item.TransfermarktID {
				return player.Player{}, uniqueViolation("player transfermarkt id %s", *item.TransfermarktID)
			}
		}
	}
	r.nextID++
	item.ID = r.nextID
	r.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[item.ID]; !ok {
		return player.Player{}, crerr.Newf("player %d not found", item.ID)
	}
	r.players[item.ID] = item
	r.updates++
	return item, nil
}

func (r *PlayerRepository) Get(id int64) (player.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[id]
	return item, ok
}

func (r *PlayerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

type membershipKey struct {
	playerID     int64
	clubSeasonID int64
}

// SquadRepository keeps squad memberships and transfers.
type SquadRepository struct {
	mu             sync.RWMutex
	nextID         int64
	nextTransferID int64
	memberships    map[membershipKey]player.SquadMembership
	transfers      []player.Transfer
}

func NewSquadRepository() *SquadRepository {
	return &SquadRepository{memberships: make(map[membershipKey]player.SquadMembership)}
}

func (r *SquadRepository) FindMembership(_ context.Context, playerID, clubSeasonID int64) (player.SquadMembership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.memberships[membershipKey{playerID: playerID, clubSeasonID: clubSeasonID}]
	return item, ok, nil
}

func (r *SquadRepository) CreateMembership(_ context.Context, item player.SquadMembership) (player.SquadMembership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := membershipKey{playerID: item.PlayerID, clubSeasonID: item.ClubSeasonID}
	if _, ok := r.memberships[key]; ok {
		return player.SquadMembership{}, uniqueViolation("squad membership %d/%d", item.PlayerID, item.ClubSeasonID)
	}
	r.nextID++
	item.ID = r.nextID
	r.memberships[key] = item
	return item, nil
}

func (r *SquadRepository) UpdateShirtNumber(_ context.Context, membershipID int64, shirtNumber int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.memberships {
		if item.ID == membershipID {
			item.ShirtNumber = &shirtNumber
			r.memberships[key] = item
			return nil
		}
	}
	return crerr.Newf("squad membership %d not found", membershipID)
}

func (r *SquadRepository) FindTransfer(_ context.Context, playerID, toClubID int64, date *time.Time) (player.Transfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.transfers {
		if item.PlayerID != playerID || item.ToClubID != toClubID {
			continue
		}
		if date != nil && !sameDay(item.Date, *date) {
			continue
		}
		return item, true, nil
	}
	return player.Transfer{}, false, nil
}

func (r *SquadRepository) CreateTransfer(_ context.Context, item player.Transfer) (player.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextTransferID++
	item.ID = r.nextTransferID
	r.transfers = append(r.transfers, item)
	return item, nil
}

func (r *SquadRepository) Memberships() []player.SquadMembership {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.SquadMembership, 0, len(r.memberships))
	for _, item := range r.memberships {
		out = append(out, item)
	}
	return out
}

func (r *SquadRepository) Transfers() []player.Transfer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]player.Transfer(nil), r.transfers...)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
