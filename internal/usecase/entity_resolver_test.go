package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-stats/internal/domain/club"
	"github.com/riskibarqy/football-stats/internal/domain/league"
	clubmock "github.com/riskibarqy/football-stats/internal/mocks/domain/club"
	leaguemock "github.com/riskibarqy/football-stats/internal/mocks/domain/league"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/id"
)

func TestEntityResolver_ResolveClubSeason_MemoisedWithinRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore(superLig())
	resolver := NewEntityResolver(store.repos(), ResolverOptions{CreateClubs: true}, nil, testLogger())

	clubID, err := resolver.ResolveClub(ctx, "Galatasaray", int64Ptr(90))
	if err != nil {
		t.Fatalf("resolve club: %v", err)
	}
	first, err := resolver.ResolveClubSeason(ctx, clubID, 5)
	if err != nil {
		t.Fatalf("resolve club season: %v", err)
	}
	second, err := resolver.ResolveClubSeason(ctx, clubID, 5)
	if err != nil {
		t.Fatalf("resolve club season again: %v", err)
	}

	if first != second {
		t.Fatalf("club season id changed: got=%d want=%d", second, first)
	}
	if got := store.clubs.Writes(); got != 2 {
		t.Fatalf("unexpected writes: got=%d want=2 (one club, one club season)", got)
	}
}

func TestEntityResolver_ResolveClubSeason_RetriesAfterUniqueViolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	resolver := NewEntityResolver(ImportRepositories{Clubs: clubRepo}, ResolverOptions{CreateClubs: true}, nil, testLogger())

	anyCtx := mock.MatchedBy(func(context.Context) bool { return true })
	clubRepo.
		On("FindSeason", anyCtx, int64(3), int64(7)).
		Return(club.Season{}, false, nil).
		Once()
	clubRepo.
		On("CreateSeason", anyCtx, club.Season{ClubID: 3, LeagueSeasonID: 7}).
		Return(club.Season{}, dberr.MarkUniqueViolation(crerr.New("pq: duplicate key value"))).
		Once()
	clubRepo.
		On("FindSeason", anyCtx, int64(3), int64(7)).
		Return(club.Season{ID: 42, ClubID: 3, LeagueSeasonID: 7}, true, nil).
		Once()

	got, err := resolver.ResolveClubSeason(ctx, 3, 7)
	if err != nil {
		t.Fatalf("resolve club season: %v", err)
	}
	if got != 42 {
		t.Fatalf("unexpected club season id: got=%d want=42", got)
	}
}

func TestEntityResolver_ResolveClubSeason_PropagatesOtherErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	resolver := NewEntityResolver(ImportRepositories{Clubs: clubRepo}, ResolverOptions{}, nil, testLogger())
	boom := errors.New("connection reset")

	anyCtx := mock.MatchedBy(func(context.Context) bool { return true })
	clubRepo.On("FindSeason", anyCtx, int64(3), int64(7)).Return(club.Season{}, false, nil).Once()
	clubRepo.On("CreateSeason", anyCtx, mock.Anything).Return(club.Season{}, boom).Once()

	_, err := resolver.ResolveClubSeason(ctx, 3, 7)
	if !errors.Is(err, boom) {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestEntityResolver_ResolveClub(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lookup only miss is unresolved", func(t *testing.T) {
		store := newMemoryStore()
		resolver := NewEntityResolver(store.repos(), ResolverOptions{CreateClubs: false}, nil, testLogger())

		_, err := resolver.ResolveClub(ctx, "Unknown FC", nil)
		if !errors.Is(err, ErrUnresolved) {
			t.Fatalf("expected ErrUnresolved, got %v", err)
		}
		if store.clubs.Writes() != 0 {
			t.Fatalf("lookup-only resolver must not create clubs")
		}
	})

	t.Run("empty name is unresolved", func(t *testing.T) {
		resolver := NewEntityResolver(newMemoryStore().repos(), ResolverOptions{CreateClubs: true}, nil, testLogger())

		_, err := resolver.ResolveClub(ctx, "   ", nil)
		if !errors.Is(err, ErrUnresolved) {
			t.Fatalf("expected ErrUnresolved, got %v", err)
		}
	})

	t.Run("normalised names share one club", func(t *testing.T) {
		store := newMemoryStore()
		resolver := NewEntityResolver(store.repos(), ResolverOptions{CreateClubs: true, NormalizeNames: true}, nil, testLogger())

		first, err := resolver.ResolveClub(ctx, "Beşiktaş J.K.", int64Ptr(90))
		if err != nil {
			t.Fatalf("resolve club: %v", err)
		}
		second, err := resolver.ResolveClub(ctx, "Besiktas JK", int64Ptr(90))
		if err != nil {
			t.Fatalf("resolve club: %v", err)
		}
		if first != second {
			t.Fatalf("expected same club: got=%d want=%d", second, first)
		}
		clubs := store.clubs.Clubs()
		if len(clubs) != 1 || clubs[0].Name != "Besiktas JK" {
			t.Fatalf("unexpected clubs: %+v", clubs)
		}
		if clubs[0].NationID == nil || *clubs[0].NationID != 90 {
			t.Fatalf("club should inherit nation 90, got %v", clubs[0].NationID)
		}
	})

	t.Run("exact names are case sensitive", func(t *testing.T) {
		store := newMemoryStore()
		resolver := NewEntityResolver(store.repos(), ResolverOptions{CreateClubs: true}, nil, testLogger())

		a, _ := resolver.ResolveClub(ctx, "Kasımpaşa", nil)
		b, _ := resolver.ResolveClub(ctx, "KASIMPAŞA", nil)
		if a == b {
			t.Fatalf("expected distinct clubs for differently cased names")
		}
	})
}

func TestEntityResolver_ResolveLeagueSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing league is fatal", func(t *testing.T) {
		resolver := NewEntityResolver(newMemoryStore().repos(), ResolverOptions{}, nil, testLogger())

		_, err := resolver.ResolveLeagueSeason(ctx, 99, 1)
		if !errors.Is(err, ErrLeagueNotFound) {
			t.Fatalf("expected ErrLeagueNotFound, got %v", err)
		}
	})

	t.Run("carries the league nation", func(t *testing.T) {
		store := newMemoryStore(superLig())
		resolver := NewEntityResolver(store.repos(), ResolverOptions{}, nil, testLogger())

		ref, err := resolver.ResolveLeagueSeason(ctx, 1, 2024)
		if err != nil {
			t.Fatalf("resolve league season: %v", err)
		}
		if ref.ID == 0 || ref.NationID == nil || *ref.NationID != 90 {
			t.Fatalf("unexpected league season ref: %+v", ref)
		}

		again, err := resolver.ResolveLeagueSeason(ctx, 1, 2024)
		if err != nil {
			t.Fatalf("resolve league season again: %v", err)
		}
		if again.ID != ref.ID || store.leagues.Writes() != 1 {
			t.Fatalf("expected one league season: got=%d want=%d writes=%d", again.ID, ref.ID, store.leagues.Writes())
		}
	})

	t.Run("uses the stored league season", func(t *testing.T) {
		leagueRepo := leaguemock.NewRepository(t)
		resolver := NewEntityResolver(ImportRepositories{Leagues: leagueRepo}, ResolverOptions{}, nil, testLogger())

		anyCtx := mock.MatchedBy(func(context.Context) bool { return true })
		leagueRepo.On("GetByID", anyCtx, int64(1)).Return(superLig(), true, nil).Once()
		leagueRepo.On("FindSeason", anyCtx, int64(1), int64(2024)).
			Return(league.Season{ID: 11, LeagueID: 1, SeasonID: 2024}, true, nil).
			Once()

		ref, err := resolver.ResolveLeagueSeason(ctx, 1, 2024)
		if err != nil {
			t.Fatalf("resolve league season: %v", err)
		}
		if ref.ID != 11 {
			t.Fatalf("unexpected league season id: got=%d want=11", ref.ID)
		}
		leagueRepo.AssertNotCalled(t, "CreateSeason", mock.Anything, mock.Anything)
	})
}

func TestEntityResolver_ResolveMatchWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	resolver := NewEntityResolver(store.repos(), ResolverOptions{}, nil, testLogger())

	week, ok, err := resolver.ResolveMatchWeek(ctx, 4, "12. Hafta")
	if err != nil || !ok {
		t.Fatalf("resolve match week: ok=%v err=%v", ok, err)
	}
	if week.WeekNumber != 12 {
		t.Fatalf("unexpected week number: got=%d want=12", week.WeekNumber)
	}

	again, _, err := resolver.ResolveMatchWeek(ctx, 4, "12")
	if err != nil {
		t.Fatalf("resolve match week again: %v", err)
	}
	if again.ID != week.ID {
		t.Fatalf("expected same match week: got=%d want=%d", again.ID, week.ID)
	}

	_, ok, err = resolver.ResolveMatchWeek(ctx, 4, "—")
	if err != nil || ok {
		t.Fatalf("week without digits must be absent: ok=%v err=%v", ok, err)
	}
	if got := store.matchWeeks.Len(); got != 1 {
		t.Fatalf("unexpected match weeks: got=%d want=1", got)
	}
}

func TestEntityResolver_DryRunUsesPlaceholders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore(superLig())
	resolver := NewEntityResolver(store.repos(), ResolverOptions{DryRun: true, CreateClubs: true}, nil, testLogger())

	ref, err := resolver.ResolveLeagueSeason(ctx, 1, 2024)
	if err != nil {
		t.Fatalf("resolve league season: %v", err)
	}
	clubID, err := resolver.ResolveClub(ctx, "Göztepe", ref.NationID)
	if err != nil {
		t.Fatalf("resolve club: %v", err)
	}
	again, err := resolver.ResolveClub(ctx, "Göztepe", ref.NationID)
	if err != nil {
		t.Fatalf("resolve club again: %v", err)
	}
	clubSeasonID, err := resolver.ResolveClubSeason(ctx, clubID, ref.ID)
	if err != nil {
		t.Fatalf("resolve club season: %v", err)
	}

	for _, v := range []int64{ref.ID, clubID, clubSeasonID} {
		if !id.IsPlaceholder(v) {
			t.Fatalf("expected placeholder id, got %d", v)
		}
	}
	if again != clubID {
		t.Fatalf("placeholder must be reused: got=%d want=%d", again, clubID)
	}
	if got := store.writes(); got != 0 {
		t.Fatalf("dry run wrote %d rows", got)
	}
}
