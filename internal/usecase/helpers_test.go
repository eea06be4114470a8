package usecase

import (
	"iter"

	"github.com/riskibarqy/football-stats/internal/domain/league"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

type memoryStore struct {
	nations    *memory.NationRepository
	seasons    *memory.SeasonRepository
	leagues    *memory.LeagueRepository
	clubs      *memory.ClubRepository
	matchWeeks *memory.MatchWeekRepository
	fixtures   *memory.FixtureRepository
	events     *memory.MatchEventRepository
	gkPerfs    *memory.GKPerfRepository
	players    *memory.PlayerRepository
	squads     *memory.SquadRepository
}

func newMemoryStore(leagues ...league.League) *memoryStore {
	return &memoryStore{
		nations:    memory.NewNationRepository(),
		seasons:    memory.NewSeasonRepository(),
		leagues:    memory.NewLeagueRepository(leagues...),
		clubs:      memory.NewClubRepository(),
		matchWeeks: memory.NewMatchWeekRepository(),
		fixtures:   memory.NewFixtureRepository(),
		events:     memory.NewMatchEventRepository(),
		gkPerfs:    memory.NewGKPerfRepository(),
		players:    memory.NewPlayerRepository(),
		squads:     memory.NewSquadRepository(),
	}
}

func (s *memoryStore) repos() ImportRepositories {
	return ImportRepositories{
		Nations:    s.nations,
		Seasons:    s.seasons,
		Leagues:    s.leagues,
		Clubs:      s.clubs,
		MatchWeeks: s.matchWeeks,
		Fixtures:   s.fixtures,
		Events:     s.events,
		GKPerfs:    s.gkPerfs,
		Players:    s.players,
		Squads:     s.squads,
		Transfers:  s.squads,
	}
}

// writes counts every row persisted after construction.
func (s *memoryStore) writes() int {
	return s.nations.Len() + s.seasons.Len() + s.leagues.Writes() + s.clubs.Writes() +
		s.matchWeeks.Len() + s.fixtures.Len() + s.events.Len() + s.gkPerfs.Len() + s.players.Len() +
		len(s.squads.Memberships()) + len(s.squads.Transfers())
}

func superLig() league.League {
	nationID := int64(90)
	return league.League{ID: 1, Name: "Süper Lig", NationID: &nationID}
}

func rowsOf(rows ...map[string]sheet.Value) iter.Seq2[sheet.Row, error] {
	return func(yield func(sheet.Row, error) bool) {
		for i, cells := range rows {
			if !yield(sheet.NewRow(i+1, cells), nil) {
				return
			}
		}
	}
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
