package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-stats/internal/domain/club"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/gkperf"
	"github.com/riskibarqy/football-stats/internal/domain/league"
	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	"github.com/riskibarqy/football-stats/internal/domain/matchweek"
	"github.com/riskibarqy/football-stats/internal/domain/nation"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/platform/cellparse"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

// ImportRepositories is the persistence port of the import use cases.
// Services only touch the repositories they need.
type ImportRepositories struct {
	Nations    nation.Repository
	Seasons    season.Repository
	Leagues    league.Repository
	Clubs      club.Repository
	MatchWeeks matchweek.Repository
	Fixtures   fixture.Repository
	Events     matchevent.Repository
	GKPerfs    gkperf.Repository
	Players    player.Repository
	Squads     player.SquadRepository
	Transfers  player.TransferRepository
}

type FixtureImportOptions struct {
	DateOrder                    cellparse.Order
	CountGoalkeeperPairsAsEvents bool
	CreateClubs                  bool
	NormalizeClubNames           bool
	ProgressEvery                int
}

type FixtureImportInput struct {
	LeagueID int64  `validate:"required,gt=0"`
	SeasonID int64  `validate:"required,gt=0"`
	Source   string `validate:"omitempty,max=1024"`
	DryRun   bool
	RunID    string
}

// UnresolvedRow is one entry of the unresolved-teams report.
type UnresolvedRow struct {
	Row      int    `json:"row"`
	HomeName string `json:"homeName"`
	HomeID   *int64 `json:"homeId"`
	AwayName string `json:"awayName"`
	AwayID   *int64 `json:"awayId"`
}

// AmbiguousDate is a date that reads differently day-first and month-first.
// Each distinct raw value is reported once, at the first row it appears.
type AmbiguousDate struct {
	Row         int       `json:"row"`
	Raw         string    `json:"raw"`
	Interpreted time.Time `json:"interpreted"`
	Order       string    `json:"order"`
}

type FixtureImportResult struct {
	RunID           string
	DryRun          bool
	RowsRead        int
	EventsInserted  int
	FixturesCreated int
	FixturesReused  int
	GoalkeeperPairs int
	Skipped         int
	Failed          int
	Unresolved      []UnresolvedRow
	AmbiguousDates  []AmbiguousDate
	ResolverCache   ResolverCacheStats
	Duration        time.Duration
}

type importState uint8

const (
	stateNormal importState = iota
	// stateAwaitingGoalkeeperPair holds the home goalkeeper row until the
	// next row, the away goalkeeper, arrives.
	stateAwaitingGoalkeeperPair
)

// FixtureImportService drives a match-event sheet through the resolver,
// reconciler and ingestor, strictly in row order.
type FixtureImportService struct {
	repos     ImportRepositories
	options   FixtureImportOptions
	validator *validator.Validate
	logger    *logging.Logger
	now       func() time.Time
}

func NewFixtureImportService(repos ImportRepositories, options FixtureImportOptions, logger *logging.Logger) *FixtureImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if options.ProgressEvery <= 0 {
		options.ProgressEvery = 100
	}
	return &FixtureImportService{
		repos:     repos,
		options:   options,
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// fixtureImportRun is the state owned by one Run call.
type fixtureImportRun struct {
	input        FixtureImportInput
	leagueSeason LeagueSeasonRef
	resolver     *EntityResolver
	reconciler   *FixtureReconciler
	ingestor     *EventIngestor
	dates        cellparse.DateParser
	logger       *logging.Logger
	result       FixtureImportResult
	seenDates    map[string]struct{}

	state       importState
	pendingHome sheet.Row
	pendingID   int64
}

// Run imports rows for one league season. Row-level problems are logged and
// counted; only a missing league, a read error or a cancelled context stop
// the run, and everything committed before that stays committed.
func (s *FixtureImportService) Run(ctx context.Context, input FixtureImportInput, rows iter.Seq2[sheet.Row, error]) (FixtureImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureImportService.Run")
	defer span.End()

	if err := s.validator.StructCtx(ctx, input); err != nil {
		return FixtureImportResult{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	if rows == nil {
		return FixtureImportResult{}, fmt.Errorf("%w: rows are required", ErrInvalidInput)
	}
	if input.RunID == "" {
		input.RunID = id.NewRunID()
	}

	started := s.now()
	logger := s.logger.With("run_id", input.RunID, "league_id", input.LeagueID, "season_id", input.SeasonID, "dry_run", input.DryRun)
	placeholders := id.NewPlaceholderGenerator()
	resolver := NewEntityResolver(s.repos, ResolverOptions{
		DryRun:         input.DryRun,
		CreateClubs:    s.options.CreateClubs,
		NormalizeNames: s.options.NormalizeClubNames,
	}, placeholders, logger)

	leagueSeason, err := resolver.ResolveLeagueSeason(ctx, input.LeagueID, input.SeasonID)
	if err != nil {
		return FixtureImportResult{}, fmt.Errorf("resolve league season: %w", err)
	}
	logger = logger.With("league_season_id", leagueSeason.ID)
	logger.InfoContext(ctx, "fixture import started", "source", input.Source, "date_order", s.options.DateOrder.String())

	run := &fixtureImportRun{
		input:        input,
		leagueSeason: leagueSeason,
		resolver:     resolver,
		reconciler:   NewFixtureReconciler(s.repos.Fixtures, resolver, input.DryRun, placeholders, logger),
		ingestor:     NewEventIngestor(s.repos.Events, s.repos.GKPerfs, input.DryRun, logger),
		dates:        cellparse.DateParser{Order: s.options.DateOrder},
		logger:       logger,
		result:       FixtureImportResult{RunID: input.RunID, DryRun: input.DryRun},
		seenDates:    make(map[string]struct{}),
	}

	for row, err := range rows {
		if err != nil {
			run.result.Duration = s.now().Sub(started)
			return run.result, fmt.Errorf("read rows: %w", err)
		}
		if err := ctx.Err(); err != nil {
			run.result.Duration = s.now().Sub(started)
			return run.result, err
		}

		run.result.RowsRead++
		s.step(ctx, run, row)

		if run.result.RowsRead%s.options.ProgressEvery == 0 {
			logger.InfoContext(ctx, "fixture import progress",
				"rows", run.result.RowsRead,
				"events", run.result.EventsInserted,
				"fixtures_created", run.result.FixturesCreated,
			)
		}
	}

	if run.state == stateAwaitingGoalkeeperPair {
		logger.WarnContext(ctx, "sheet ended inside a goalkeeper pair", "row", run.pendingHome.Number)
		s.completeGoalkeeperPair(ctx, run, sheet.Row{})
	}

	run.result.Duration = s.now().Sub(started)
	run.result.ResolverCache = run.resolver.CacheStats()
	logger.InfoContext(ctx, "fixture import finished",
		"rows_read", run.result.RowsRead,
		"events_inserted", run.result.EventsInserted,
		"fixtures_created", run.result.FixturesCreated,
		"fixtures_reused", run.result.FixturesReused,
		"goalkeeper_pairs", run.result.GoalkeeperPairs,
		"skipped", run.result.Skipped,
		"failed", run.result.Failed,
		"unresolved", len(run.result.Unresolved),
		"ambiguous_dates", len(run.result.AmbiguousDates),
		"resolver_cache_hits", run.result.ResolverCache.Hits,
		"resolver_cache_misses", run.result.ResolverCache.Misses,
		"duration", run.result.Duration,
	)

	return run.result, nil
}

func (s *FixtureImportService) step(ctx context.Context, run *fixtureImportRun, row sheet.Row) {
	if run.state == stateAwaitingGoalkeeperPair {
		s.completeGoalkeeperPair(ctx, run, row)
		return
	}

	fixtureID, ok, err := s.bindFixture(ctx, run, row)
	if err != nil {
		run.result.Failed++
		run.logger.ErrorContext(ctx, "row failed", "row", row.Number, "error", err)
		return
	}
	if !ok {
		return
	}

	if !cellparse.Present(row.Get(fixtureColMinute)) {
		run.state = stateAwaitingGoalkeeperPair
		run.pendingHome = row
		run.pendingID = fixtureID
		return
	}

	outcome, err := run.ingestor.IngestEvent(ctx, fixtureID, row)
	if err != nil {
		run.result.Failed++
		run.logger.ErrorContext(ctx, "row failed", "row", row.Number, "error", err)
		return
	}
	switch outcome {
	case IngestInserted, IngestPlanned:
		run.result.EventsInserted++
	case IngestSkipped:
		run.result.Skipped++
	}
}

func (s *FixtureImportService) completeGoalkeeperPair(ctx context.Context, run *fixtureImportRun, away sheet.Row) {
	home, fixtureID := run.pendingHome, run.pendingID
	run.state = stateNormal
	run.pendingHome = sheet.Row{}
	run.pendingID = 0

	outcome, err := run.ingestor.IngestGoalkeepers(ctx, fixtureID, home, away)
	if err != nil {
		run.result.Failed++
		run.logger.ErrorContext(ctx, "row failed", "row", home.Number, "error", err)
		return
	}
	switch outcome {
	case IngestInserted, IngestPlanned:
		run.result.GoalkeeperPairs++
		if s.options.CountGoalkeeperPairsAsEvents {
			run.result.EventsInserted++
		}
	case IngestSkipped:
		run.result.Skipped++
	}
}

// bindFixture resolves both teams and the fixture of row. ok is false when
// the row went to the unresolved report.
func (s *FixtureImportService) bindFixture(ctx context.Context, run *fixtureImportRun, row sheet.Row) (int64, bool, error) {
	homeName := cellparse.String(row.Get(fixtureColHomeName))
	awayName := cellparse.String(row.Get(fixtureColAwayName))

	homeID, homeErr := s.resolveTeam(ctx, run, homeName)
	awayID, awayErr := s.resolveTeam(ctx, run, awayName)
	for _, err := range []error{homeErr, awayErr} {
		if err != nil && !errors.Is(err, ErrUnresolved) {
			return 0, false, err
		}
	}
	if homeErr != nil || awayErr != nil {
		entry := UnresolvedRow{Row: row.Number, HomeName: homeName, AwayName: awayName}
		if homeErr == nil {
			entry.HomeID = &homeID
		}
		if awayErr == nil {
			entry.AwayID = &awayID
		}
		run.result.Unresolved = append(run.result.Unresolved, entry)
		run.logger.WarnContext(ctx, "row unresolved", "row", row.Number, "home", homeName, "away", awayName)
		return 0, false, nil
	}

	date := s.parseDate(ctx, run, row)
	result, err := run.reconciler.Reconcile(ctx, FixtureInput{
		LeagueSeasonID:   run.leagueSeason.ID,
		HomeClubSeasonID: homeID,
		AwayClubSeasonID: awayID,
		HomeTeamName:     homeName,
		AwayTeamName:     awayName,
		Date:             date.Ptr(),
		WeekRaw:          cellparse.String(row.Get(fixtureColWeek)),
		HomeScore:        cellparse.Int(row.Get(fixtureColHomeScore)),
		AwayScore:        cellparse.Int(row.Get(fixtureColAwayScore)),
		HomeXG:           cellparse.Number(row.Get(fixtureColHomeXG)),
		AwayXG:           cellparse.Number(row.Get(fixtureColAwayXG)),
		HomeFormation:    cellparse.Text(row.Get(fixtureColHomeFormation)),
		AwayFormation:    cellparse.Text(row.Get(fixtureColAwayFormation)),
		Notes:            cellparse.Text(row.Get(fixtureColNotes)),
	})
	if err != nil {
		return 0, false, err
	}
	switch {
	case result.Created:
		run.result.FixturesCreated++
	case !result.Cached:
		run.result.FixturesReused++
	}

	return result.ID, true, nil
}

func (s *FixtureImportService) resolveTeam(ctx context.Context, run *fixtureImportRun, name string) (int64, error) {
	clubID, err := run.resolver.ResolveClub(ctx, name, run.leagueSeason.NationID)
	if err != nil {
		return 0, err
	}
	return run.resolver.ResolveClubSeason(ctx, clubID, run.leagueSeason.ID)
}

func (s *FixtureImportService) parseDate(ctx context.Context, run *fixtureImportRun, row sheet.Row) cellparse.Date {
	cell := row.Get(fixtureColDate)
	date := run.dates.Parse(cell)
	if !date.Ambiguous {
		return date
	}

	raw := cell.String()
	if _, seen := run.seenDates[raw]; seen {
		return date
	}
	run.seenDates[raw] = struct{}{}
	run.result.AmbiguousDates = append(run.result.AmbiguousDates, AmbiguousDate{
		Row:         row.Number,
		Raw:         raw,
		Interpreted: date.Time,
		Order:       run.dates.Order.String(),
	})
	run.logger.WarnContext(ctx, "ambiguous date, review manually",
		"row", row.Number,
		"raw", raw,
		"interpreted", date.Time.Format(time.DateOnly),
		"order", run.dates.Order.String(),
	)
	return date
}
