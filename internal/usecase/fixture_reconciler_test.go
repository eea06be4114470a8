package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	fixturemock "github.com/riskibarqy/football-stats/internal/mocks/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/id"
)

func TestFixtureReconciler_DedupesByKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	resolver := NewEntityResolver(store.repos(), ResolverOptions{}, nil, testLogger())
	reconciler := NewFixtureReconciler(store.fixtures, resolver, false, nil, testLogger())

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	nextWeek := day.AddDate(0, 0, 7)
	in := FixtureInput{
		LeagueSeasonID:   1,
		HomeClubSeasonID: 10,
		AwayClubSeasonID: 20,
		HomeTeamName:     " Galatasaray ",
		AwayTeamName:     "Fenerbahçe",
		Date:             &day,
		WeekRaw:          "27",
	}

	first, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile first row: %v", err)
	}
	second, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile second row: %v", err)
	}
	in.Date = &nextWeek
	third, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile third row: %v", err)
	}

	if !first.Created || second.Created || !second.Cached || !third.Created {
		t.Fatalf("unexpected results: first=%+v second=%+v third=%+v", first, second, third)
	}
	if first.ID != second.ID || first.ID == third.ID {
		t.Fatalf("unexpected ids: first=%d second=%d third=%d", first.ID, second.ID, third.ID)
	}

	fixtures := store.fixtures.List()
	if len(fixtures) != 2 {
		t.Fatalf("unexpected fixture count: got=%d want=2", len(fixtures))
	}
	stored := fixtures[0]
	if stored.HomeTeamName != "Galatasaray" || stored.AwayTeamName != "Fenerbahçe" {
		t.Fatalf("raw team names not kept: %+v", stored)
	}
	if stored.WeekNumber == nil || *stored.WeekNumber != 27 || stored.MatchWeekID == nil {
		t.Fatalf("match week not linked: %+v", stored)
	}
	if got := store.matchWeeks.Len(); got != 1 {
		t.Fatalf("unexpected match weeks: got=%d want=1", got)
	}
}

func TestFixtureReconciler_ReusesStoredFixture(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtureRepo := fixturemock.NewRepository(t)
	reconciler := NewFixtureReconciler(fixtureRepo, NewEntityResolver(ImportRepositories{}, ResolverOptions{}, nil, testLogger()), false, nil, testLogger())

	fixtureRepo.
		On("FindByKey", mock.MatchedBy(func(v context.Context) bool { return v != nil }), fixture.Key{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20}).
		Return(fixture.Fixture{ID: 500}, true, nil).
		Once()

	in := FixtureInput{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20}
	got, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got.ID != 500 || got.Created || got.Cached {
		t.Fatalf("unexpected result: %+v", got)
	}

	again, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile again: %v", err)
	}
	if again.ID != 500 || !again.Cached {
		t.Fatalf("second row should hit the run cache: %+v", again)
	}
	fixtureRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFixtureReconciler_ConcurrentCreateReusesWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtureRepo := fixturemock.NewRepository(t)
	reconciler := NewFixtureReconciler(fixtureRepo, NewEntityResolver(ImportRepositories{}, ResolverOptions{}, nil, testLogger()), false, nil, testLogger())

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	key := fixture.Key{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20, Date: &day}
	fixtureRepo.On("FindByKey", mock.Anything, key).Return(fixture.Fixture{}, false, nil).Once()
	fixtureRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(f fixture.Fixture) bool { return f.HomeClubSeasonID == 10 })).
		Return(fixture.Fixture{}, dberr.MarkUniqueViolation(errors.New("duplicate key value violates unique constraint"))).
		Once()
	fixtureRepo.On("FindByKey", mock.Anything, key).Return(fixture.Fixture{ID: 77}, true, nil).Once()

	in := FixtureInput{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20, Date: &day}
	got, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got.ID != 77 || got.Created || got.Cached {
		t.Fatalf("unexpected result: %+v", got)
	}

	again, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile again: %v", err)
	}
	if again.ID != 77 || !again.Cached {
		t.Fatalf("winner id must be cached for the run: %+v", again)
	}
}

func TestFixtureReconciler_CreateErrorWithoutConflict(t *testing.T) {
	t.Parallel()

	fixtureRepo := fixturemock.NewRepository(t)
	reconciler := NewFixtureReconciler(fixtureRepo, NewEntityResolver(ImportRepositories{}, ResolverOptions{}, nil, testLogger()), false, nil, testLogger())

	fixtureRepo.On("FindByKey", mock.Anything, mock.Anything).Return(fixture.Fixture{}, false, nil).Once()
	fixtureRepo.On("Create", mock.Anything, mock.Anything).Return(fixture.Fixture{}, context.DeadlineExceeded).Once()

	_, err := reconciler.Reconcile(context.Background(), FixtureInput{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestFixtureReconciler_DryRunSkipsStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtureRepo := fixturemock.NewRepository(t)
	store := newMemoryStore()
	resolver := NewEntityResolver(store.repos(), ResolverOptions{DryRun: true}, nil, testLogger())
	reconciler := NewFixtureReconciler(fixtureRepo, resolver, true, nil, testLogger())

	in := FixtureInput{LeagueSeasonID: 1, HomeClubSeasonID: 10, AwayClubSeasonID: 20, WeekRaw: "3"}
	first, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	second, err := reconciler.Reconcile(ctx, in)
	if err != nil {
		t.Fatalf("reconcile again: %v", err)
	}

	if !first.Created || !id.IsPlaceholder(first.ID) {
		t.Fatalf("expected planned placeholder fixture: %+v", first)
	}
	if second.ID != first.ID || !second.Cached {
		t.Fatalf("dry run must dedupe through the run cache: first=%+v second=%+v", first, second)
	}
	fixtureRepo.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
	fixtureRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	if store.matchWeeks.Len() != 0 {
		t.Fatalf("dry run created match weeks")
	}
}

func TestFixtureReconciler_RejectsMissingIDs(t *testing.T) {
	t.Parallel()

	reconciler := NewFixtureReconciler(fixturemock.NewRepository(t), nil, false, nil, testLogger())
	if _, err := reconciler.Reconcile(context.Background(), FixtureInput{LeagueSeasonID: 1}); err == nil {
		t.Fatalf("expected error for missing club season ids")
	}
}
