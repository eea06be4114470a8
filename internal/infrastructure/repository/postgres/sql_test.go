package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/football-stats/internal/platform/dberr"
)

func TestClassify(t *testing.T) {
	t.Run("marks unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert club: %w", &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "clubs_name_key"`})
		if !dberr.IsUniqueViolation(classify(err)) {
			t.Fatalf("expected unique violation mark")
		}
	})

	t.Run("marks undefined table", func(t *testing.T) {
		err := &pq.Error{Code: "42P01", Message: `relation "gk_perfs" does not exist`}
		got := classify(err)
		if !dberr.IsMissingRelation(got) || dberr.IsUniqueViolation(got) {
			t.Fatalf("expected missing relation mark only, got %v", got)
		}
	})

	t.Run("leaves other errors alone", func(t *testing.T) {
		err := errors.New("connection reset by peer")
		if got := classify(err); got != err {
			t.Fatalf("unexpected error: %v", got)
		}
		fk := &pq.Error{Code: "23503"}
		if dberr.IsUniqueViolation(classify(fk)) {
			t.Fatalf("foreign key violation must not be a unique violation")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullConversions(t *testing.T) {
	name := "Galatasaray"
	if got := stringPtr(nullString(&name)); got == nil || *got != name {
		t.Fatalf("string round trip failed: %v", got)
	}
	if nullString(nil).Valid {
		t.Fatalf("nil string must be NULL")
	}

	week := 27
	if got := intPtr(nullInt(&week)); got == nil || *got != 27 {
		t.Fatalf("int round trip failed: %v", got)
	}

	kickoff := time.Date(2024, 3, 5, 19, 0, 0, 0, time.FixedZone("TRT", 3*60*60))
	stored := nullTime(&kickoff)
	if !stored.Valid || stored.Time.Location() != time.UTC || stored.Time.Hour() != 16 {
		t.Fatalf("time must be stored as UTC: %+v", stored)
	}
	var zero time.Time
	if nullTime(&zero).Valid {
		t.Fatalf("zero time must be NULL")
	}
}

func TestMissingTables(t *testing.T) {
	got := MissingTables(RequiredTables, []string{"nations", "seasons", "leagues", "league_seasons", "clubs", "club_seasons", "match_weeks", "fixtures", "match_events", "players", "squad_memberships", "transfers"})
	if len(got) != 1 || got[0] != "gk_perfs" {
		t.Fatalf("unexpected missing tables: %v", got)
	}
	if got := MissingTables(RequiredTables, RequiredTables); len(got) != 0 {
		t.Fatalf("expected no missing tables, got %v", got)
	}
}
