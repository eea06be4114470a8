package fixture

import (
	"testing"
	"time"
)

func TestKey_String(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2024, 3, 5, 19, 0, 0, 999_000_000, time.FixedZone("TRT", 3*60*60))
	withDate := Key{LeagueSeasonID: 4, HomeClubSeasonID: 10, AwayClubSeasonID: 11, Date: &kickoff}
	if got, want := withDate.String(), "4|10|11|2024-03-05T16:00:00"; got != want {
		t.Fatalf("unexpected key: got=%s want=%s", got, want)
	}

	noDate := Key{LeagueSeasonID: 4, HomeClubSeasonID: 10, AwayClubSeasonID: 11}
	if got, want := noDate.String(), "4|10|11|nodate"; got != want {
		t.Fatalf("unexpected key: got=%s want=%s", got, want)
	}
}

func TestFixture_Validate(t *testing.T) {
	t.Parallel()

	if err := (Fixture{LeagueSeasonID: 1, HomeClubSeasonID: 2}).Validate(); err == nil {
		t.Fatalf("expected error for missing away club season")
	}
	if err := (Fixture{LeagueSeasonID: 1, HomeClubSeasonID: 2, AwayClubSeasonID: 3}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
