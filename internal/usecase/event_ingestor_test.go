package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	gkperfmock "github.com/riskibarqy/football-stats/internal/mocks/domain/gkperf"
	matcheventmock "github.com/riskibarqy/football-stats/internal/mocks/domain/matchevent"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

func TestEventIngestor_SecondGoalkeeperPairIsSkipped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	ingestor := NewEventIngestor(store.events, store.gkPerfs, false, testLogger())

	home := sheet.NewRow(3, map[string]sheet.Value{
		fixtureColPlayerFirst:  sheet.Text("Fernando"),
		fixtureColPlayerLast:   sheet.Text("Muslera"),
		fixtureColPlayerRating: sheet.Text("7,4"),
		fixtureColBigChance:    sheet.Number(4),
	})
	away := sheet.NewRow(4, map[string]sheet.Value{
		fixtureColPlayerFirst:  sheet.Text("Dominik"),
		fixtureColPlayerLast:   sheet.Text("Livaković"),
		fixtureColPlayerRating: sheet.Number(6.8),
		fixtureColBigChance:    sheet.Text("2"),
	})

	first, err := ingestor.IngestGoalkeepers(ctx, 9, home, away)
	if err != nil || first != IngestInserted {
		t.Fatalf("first goalkeeper pair: outcome=%s err=%v", first, err)
	}
	second, err := ingestor.IngestGoalkeepers(ctx, 9, away, home)
	if err != nil {
		t.Fatalf("second goalkeeper pair must not fail: %v", err)
	}
	if second != IngestSkipped {
		t.Fatalf("unexpected outcome: got=%s want=%s", second, IngestSkipped)
	}

	stored, ok, err := store.gkPerfs.GetByFixture(ctx, 9)
	if err != nil || !ok {
		t.Fatalf("get goalkeeper performance: ok=%v err=%v", ok, err)
	}
	if *stored.HomeGKLastName != "Muslera" || *stored.AwayGKLastName != "Livaković" {
		t.Fatalf("first record must stay intact: %+v", stored)
	}
	if *stored.HomeRating != 7.4 || *stored.AwaySaves != 2 || *stored.HomeSaves != 4 {
		t.Fatalf("unexpected ratings or saves: %+v", stored)
	}
}

func TestEventIngestor_IngestEvent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	ingestor := NewEventIngestor(store.events, store.gkPerfs, false, testLogger())

	row := sheet.NewRow(1, map[string]sheet.Value{
		fixtureColMinute:      sheet.Text("45+2"),
		fixtureColTeam:        sheet.Text("Galatasaray"),
		fixtureColPlayerFirst: sheet.Text("Mauro"),
		fixtureColPlayerLast:  sheet.Text("Icardi"),
		fixtureColXG:          sheet.Text("0,37"),
		fixtureColBigChance:   sheet.Text("✓"),
		fixtureColOutcome:     sheet.Text("Gol"),
	})

	outcome, err := ingestor.IngestEvent(ctx, 9, row)
	if err != nil || outcome != IngestInserted {
		t.Fatalf("ingest event: outcome=%s err=%v", outcome, err)
	}
	outcome, err = ingestor.IngestEvent(ctx, 9, row)
	if err != nil || outcome != IngestSkipped {
		t.Fatalf("duplicate event: outcome=%s err=%v", outcome, err)
	}

	events := store.events.List()
	if len(events) != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", len(events))
	}
	got := events[0]
	if got.Minute != nil || got.MinuteText == nil || *got.MinuteText != "45+2" {
		t.Fatalf("unexpected minute: minute=%v text=%v", got.Minute, got.MinuteText)
	}
	if !got.BigChance || got.XG == nil || *got.XG != 0.37 {
		t.Fatalf("unexpected shot metrics: %+v", got)
	}
	if got.AssistFirstName != nil {
		t.Fatalf("empty assist cell must stay nil")
	}
}

func TestEventIngestor_DryRunNeverWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := matcheventmock.NewRepository(t)
	gkRepo := gkperfmock.NewRepository(t)
	ingestor := NewEventIngestor(eventRepo, gkRepo, true, testLogger())

	for minute := range dryRunSampleSize + 2 {
		row := sheet.NewRow(minute+1, map[string]sheet.Value{fixtureColMinute: sheet.Number(float64(minute))})
		outcome, err := ingestor.IngestEvent(ctx, -1, row)
		if err != nil || outcome != IngestPlanned {
			t.Fatalf("dry run event: outcome=%s err=%v", outcome, err)
		}
	}
	row := sheet.NewRow(1, map[string]sheet.Value{fixtureColPlayerLast: sheet.Text("Muslera")})
	outcome, err := ingestor.IngestGoalkeepers(ctx, -1, row, sheet.Row{})
	if err != nil || outcome != IngestPlanned {
		t.Fatalf("dry run goalkeepers: outcome=%s err=%v", outcome, err)
	}

	eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	gkRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventIngestor_DryRunSkipsRepeats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ingestor := NewEventIngestor(matcheventmock.NewRepository(t), gkperfmock.NewRepository(t), true, testLogger())

	row := sheet.NewRow(1, map[string]sheet.Value{
		fixtureColMinute:     sheet.Number(45),
		fixtureColPlayerLast: sheet.Text("Icardi"),
		fixtureColXG:         sheet.Text("0,12"),
	})
	otherShot := sheet.NewRow(2, map[string]sheet.Value{
		fixtureColMinute:     sheet.Number(45),
		fixtureColPlayerLast: sheet.Text("Icardi"),
		fixtureColXG:         sheet.Text("0,55"),
	})

	want := []IngestOutcome{IngestPlanned, IngestPlanned, IngestSkipped}
	for i, r := range []sheet.Row{row, otherShot, row} {
		got, err := ingestor.IngestEvent(ctx, -1, r)
		if err != nil || got != want[i] {
			t.Fatalf("event %d: outcome=%s err=%v want=%s", i, got, err, want[i])
		}
	}

	first, err := ingestor.IngestGoalkeepers(ctx, -1, row, otherShot)
	if err != nil || first != IngestPlanned {
		t.Fatalf("first goalkeeper pair: outcome=%s err=%v", first, err)
	}
	second, err := ingestor.IngestGoalkeepers(ctx, -1, row, otherShot)
	if err != nil || second != IngestSkipped {
		t.Fatalf("repeated goalkeeper pair: outcome=%s err=%v", second, err)
	}
	other, err := ingestor.IngestGoalkeepers(ctx, -2, row, otherShot)
	if err != nil || other != IngestPlanned {
		t.Fatalf("pair of another fixture: outcome=%s err=%v", other, err)
	}
}

func TestEventIngestor_SameMinuteShotsDifferingInXG(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	ingestor := NewEventIngestor(store.events, store.gkPerfs, false, testLogger())

	for i, xg := range []string{"0,12", "0,55"} {
		row := sheet.NewRow(i+1, map[string]sheet.Value{
			fixtureColMinute:     sheet.Number(45),
			fixtureColTeam:       sheet.Text("Galatasaray"),
			fixtureColPlayerLast: sheet.Text("Icardi"),
			fixtureColOutcome:    sheet.Text("Kaçan"),
			fixtureColXG:         sheet.Text(xg),
		})
		outcome, err := ingestor.IngestEvent(ctx, 9, row)
		if err != nil || outcome != IngestInserted {
			t.Fatalf("shot %d: outcome=%s err=%v", i, outcome, err)
		}
	}
	if got := store.events.Len(); got != 2 {
		t.Fatalf("unexpected event count: got=%d want=2", got)
	}
}

func TestEventIngestor_PropagatesStorageErrors(t *testing.T) {
	t.Parallel()

	eventRepo := matcheventmock.NewRepository(t)
	ingestor := NewEventIngestor(eventRepo, nil, false, testLogger())

	eventRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(e matchevent.Event) bool { return e.FixtureID == 3 })).
		Return(matchevent.Event{}, context.DeadlineExceeded).
		Once()

	row := sheet.NewRow(1, map[string]sheet.Value{fixtureColMinute: sheet.Number(10)})
	if _, err := ingestor.IngestEvent(context.Background(), 3, row); err == nil {
		t.Fatalf("expected storage error")
	}
}
