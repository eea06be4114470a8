package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/gkperf"
	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	"github.com/riskibarqy/football-stats/internal/platform/cellparse"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

// IngestOutcome tells the orchestrator which counter a row feeds.
type IngestOutcome uint8

const (
	IngestInserted IngestOutcome = iota + 1
	// IngestPlanned is a dry-run insert.
	IngestPlanned
	// IngestSkipped is a duplicate of a stored record, or under dry run of
	// one already planned in this run.
	IngestSkipped
)

func (o IngestOutcome) String() string {
	switch o {
	case IngestInserted:
		return "inserted"
	case IngestPlanned:
		return "planned"
	case IngestSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// dryRunSampleSize bounds how many planned events are logged per run.
const dryRunSampleSize = 10

type EventIngestor struct {
	events  matchevent.Repository
	gkPerfs gkperf.Repository
	dryRun  bool
	logger  *logging.Logger
	planned int
	// Dry run keeps the keys it would have written so repeats are skipped
	// the same way the unique indexes skip them in a real run.
	plannedEvents      map[string]struct{}
	plannedGoalkeepers map[int64]struct{}
}

func NewEventIngestor(events matchevent.Repository, gkPerfs gkperf.Repository, dryRun bool, logger *logging.Logger) *EventIngestor {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventIngestor{
		events:  events,
		gkPerfs: gkPerfs,
		dryRun:  dryRun,
		logger:  logger,

		plannedEvents:      make(map[string]struct{}),
		plannedGoalkeepers: make(map[int64]struct{}),
	}
}

// IngestGoalkeepers stores the goalkeeper pair of a fixture. Ratings come
// from the player rating column and saves from the big-chance column. away
// is the zero Row when the sheet ended before the pair was complete.
func (i *EventIngestor) IngestGoalkeepers(ctx context.Context, fixtureID int64, home, away sheet.Row) (IngestOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventIngestor.IngestGoalkeepers")
	defer span.End()

	item := gkperf.Performance{
		FixtureID:       fixtureID,
		HomeGKFirstName: cellparse.Text(home.Get(fixtureColPlayerFirst)),
		HomeGKLastName:  cellparse.Text(home.Get(fixtureColPlayerLast)),
		AwayGKFirstName: cellparse.Text(away.Get(fixtureColPlayerFirst)),
		AwayGKLastName:  cellparse.Text(away.Get(fixtureColPlayerLast)),
		HomeRating:      cellparse.Number(home.Get(fixtureColPlayerRating)),
		AwayRating:      cellparse.Number(away.Get(fixtureColPlayerRating)),
		HomeSaves:       cellparse.Number(home.Get(fixtureColBigChance)),
		AwaySaves:       cellparse.Number(away.Get(fixtureColBigChance)),
	}
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if i.dryRun {
		if _, seen := i.plannedGoalkeepers[fixtureID]; seen {
			i.logger.InfoContext(ctx, "duplicate goalkeeper performance skipped", "fixture_id", fixtureID, "row", home.Number)
			return IngestSkipped, nil
		}
		i.plannedGoalkeepers[fixtureID] = struct{}{}
		i.logPlanned(ctx, "dry run goalkeeper pair planned", "fixture_id", fixtureID, "row", home.Number)
		return IngestPlanned, nil
	}

	if _, err := i.gkPerfs.Create(ctx, item); err != nil {
		if dberr.IsUniqueViolation(err) {
			i.logger.InfoContext(ctx, "duplicate goalkeeper performance skipped", "fixture_id", fixtureID, "row", home.Number)
			return IngestSkipped, nil
		}
		return 0, fmt.Errorf("create goalkeeper performance fixture=%d: %w", fixtureID, err)
	}
	return IngestInserted, nil
}

// IngestEvent stores one match event row.
func (i *EventIngestor) IngestEvent(ctx context.Context, fixtureID int64, row sheet.Row) (IngestOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventIngestor.IngestEvent")
	defer span.End()

	item := eventFromRow(fixtureID, row)
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if i.dryRun {
		key := item.NaturalKey()
		if _, seen := i.plannedEvents[key]; seen {
			i.logger.InfoContext(ctx, "duplicate event skipped", "fixture_id", fixtureID, "row", row.Number)
			return IngestSkipped, nil
		}
		i.plannedEvents[key] = struct{}{}
		i.logPlanned(ctx, "dry run event planned", "fixture_id", fixtureID, "row", row.Number, "key", key)
		return IngestPlanned, nil
	}

	if _, err := i.events.Create(ctx, item); err != nil {
		if dberr.IsUniqueViolation(err) {
			i.logger.InfoContext(ctx, "duplicate event skipped", "fixture_id", fixtureID, "row", row.Number)
			return IngestSkipped, nil
		}
		return 0, fmt.Errorf("create match event fixture=%d: %w", fixtureID, err)
	}
	return IngestInserted, nil
}

func (i *EventIngestor) logPlanned(ctx context.Context, msg string, args ...any) {
	i.planned++
	if i.planned > dryRunSampleSize {
		return
	}
	i.logger.InfoContext(ctx, msg, args...)
}

func eventFromRow(fixtureID int64, row sheet.Row) matchevent.Event {
	minute := row.Get(fixtureColMinute)
	return matchevent.Event{
		FixtureID:       fixtureID,
		Minute:          cellparse.Int(minute),
		MinuteText:      cellparse.Text(minute),
		TeamName:        cellparse.Text(row.Get(fixtureColTeam)),
		PlayerFirstName: cellparse.Text(row.Get(fixtureColPlayerFirst)),
		PlayerLastName:  cellparse.Text(row.Get(fixtureColPlayerLast)),
		PlayerPosition:  cellparse.Text(row.Get(fixtureColPlayerPos)),
		PlayerRating:    cellparse.Number(row.Get(fixtureColPlayerRating)),
		ShotArea:        cellparse.Text(row.Get(fixtureColShotArea)),
		ShotType:        cellparse.Text(row.Get(fixtureColShotType)),
		LeadUp:          cellparse.Text(row.Get(fixtureColLeadUp)),
		XG:              cellparse.Number(row.Get(fixtureColXG)),
		XGOT:            cellparse.Number(row.Get(fixtureColXGOT)),
		BigChance:       cellparse.Present(row.Get(fixtureColBigChance)),
		Outcome:         cellparse.Text(row.Get(fixtureColOutcome)),
		ScoreAtShot:     cellparse.Text(row.Get(fixtureColScoreAtShot)),
		AssistFirstName: cellparse.Text(row.Get(fixtureColAssistFirst)),
		AssistLastName:  cellparse.Text(row.Get(fixtureColAssistLast)),
		Notes:           cellparse.Text(row.Get(fixtureColNotes)),
	}
}
