package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// FixtureInput is one row's view of a fixture after team resolution.
type FixtureInput struct {
	LeagueSeasonID   int64
	HomeClubSeasonID int64
	AwayClubSeasonID int64
	HomeTeamName     string
	AwayTeamName     string
	Date             *time.Time
	// WeekRaw is the week cell as written, e.g. "12" or "12. Hafta".
	WeekRaw       string
	HomeScore     *int
	AwayScore     *int
	HomeXG        *float64
	AwayXG        *float64
	HomeFormation *string
	AwayFormation *string
	Notes         *string
}

func (in FixtureInput) key() fixture.Key {
	return fixture.Key{
		LeagueSeasonID:   in.LeagueSeasonID,
		HomeClubSeasonID: in.HomeClubSeasonID,
		AwayClubSeasonID: in.AwayClubSeasonID,
		Date:             in.Date,
	}
}

type FixtureResult struct {
	ID int64
	// Created is set the first time this run creates (or plans) the fixture.
	Created bool
	// Cached is set when an earlier row of the run already bound the key.
	Cached bool
}

// FixtureReconciler binds rows to fixtures. Keys are checked against the
// run cache first, then storage, so repeated rows of one match never cost
// a second round-trip. Under dry run storage is not consulted at all.
type FixtureReconciler struct {
	fixtures     fixture.Repository
	resolver     *EntityResolver
	dryRun       bool
	placeholders id.Generator
	logger       *logging.Logger
	byKey        *cache.Memo[int64]
}

func NewFixtureReconciler(
	fixtures fixture.Repository,
	resolver *EntityResolver,
	dryRun bool,
	placeholders id.Generator,
	logger *logging.Logger,
) *FixtureReconciler {
	if placeholders == nil {
		placeholders = id.NewPlaceholderGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureReconciler{
		fixtures:     fixtures,
		resolver:     resolver,
		dryRun:       dryRun,
		placeholders: placeholders,
		logger:       logger,
		byKey:        cache.NewMemo[int64](),
	}
}

func (r *FixtureReconciler) Reconcile(ctx context.Context, in FixtureInput) (FixtureResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureReconciler.Reconcile")
	defer span.End()

	if in.LeagueSeasonID == 0 || in.HomeClubSeasonID == 0 || in.AwayClubSeasonID == 0 {
		return FixtureResult{}, fmt.Errorf("%w: league season and club season ids are required", ErrInvalidInput)
	}

	key := in.key()
	cacheKey := key.String()
	if fixtureID, ok := r.byKey.Get(cacheKey); ok {
		return FixtureResult{ID: fixtureID, Cached: true}, nil
	}

	if !r.dryRun {
		existing, ok, err := r.fixtures.FindByKey(ctx, key)
		if err != nil {
			return FixtureResult{}, fmt.Errorf("find fixture %s: %w", cacheKey, err)
		}
		if ok {
			r.byKey.Set(cacheKey, existing.ID)
			return FixtureResult{ID: existing.ID}, nil
		}
	}

	item := fixture.Fixture{
		LeagueSeasonID:   in.LeagueSeasonID,
		Date:             in.Date,
		HomeClubSeasonID: in.HomeClubSeasonID,
		AwayClubSeasonID: in.AwayClubSeasonID,
		HomeTeamName:     strings.TrimSpace(in.HomeTeamName),
		AwayTeamName:     strings.TrimSpace(in.AwayTeamName),
		HomeScore:        in.HomeScore,
		AwayScore:        in.AwayScore,
		HomeXG:           in.HomeXG,
		AwayXG:           in.AwayXG,
		HomeFormation:    in.HomeFormation,
		AwayFormation:    in.AwayFormation,
		Notes:            in.Notes,
	}

	week, ok, err := r.resolver.ResolveMatchWeek(ctx, in.LeagueSeasonID, in.WeekRaw)
	if err != nil {
		return FixtureResult{}, err
	}
	if ok {
		item.WeekNumber = &week.WeekNumber
		item.MatchWeekID = &week.ID
		if id.IsPlaceholder(week.ID) {
			item.MatchWeekID = nil
		}
	}

	if err := item.Validate(); err != nil {
		return FixtureResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if r.dryRun {
		fixtureID := r.placeholders.Next()
		r.byKey.Set(cacheKey, fixtureID)
		r.logger.DebugContext(ctx, "dry run fixture planned",
			"fixture_id", fixtureID,
			"key", cacheKey,
			"home", item.HomeTeamName,
			"away", item.AwayTeamName,
		)
		return FixtureResult{ID: fixtureID, Created: true}, nil
	}

	created, err := r.fixtures.Create(ctx, item)
	if err != nil {
		if !dberr.IsUniqueViolation(err) {
			return FixtureResult{}, fmt.Errorf("create fixture %s: %w", cacheKey, err)
		}
		// Another writer inserted the same key after our lookup.
		existing, ok, findErr := r.fixtures.FindByKey(ctx, key)
		if findErr != nil {
			return FixtureResult{}, fmt.Errorf("find fixture %s after conflict: %w", cacheKey, findErr)
		}
		if !ok {
			return FixtureResult{}, fmt.Errorf("create fixture %s: %w", cacheKey, err)
		}
		r.byKey.Set(cacheKey, existing.ID)
		r.logger.InfoContext(ctx, "fixture created concurrently, reusing", "fixture_id", existing.ID, "key", cacheKey)
		return FixtureResult{ID: existing.ID}, nil
	}
	r.byKey.Set(cacheKey, created.ID)
	r.logger.DebugContext(ctx, "fixture created", "fixture_id", created.ID, "key", cacheKey)

	return FixtureResult{ID: created.ID, Created: true}, nil
}
