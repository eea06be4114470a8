package fixture

import (
	"fmt"
	"time"
)

// Fixture is one match between two club seasons. The raw team names are kept
// next to the resolved ids so spelling drift in the source stays traceable.
type Fixture struct {
	ID               int64
	LeagueSeasonID   int64
	MatchWeekID      *int64
	WeekNumber       *int
	Date             *time.Time
	HomeClubSeasonID int64
	AwayClubSeasonID int64
	HomeTeamName     string
	AwayTeamName     string
	HomeScore        *int
	AwayScore        *int
	HomeXG           *float64
	AwayXG           *float64
	HomeFormation    *string
	AwayFormation    *string
	Notes            *string
}

func (f Fixture) Validate() error {
	if f.LeagueSeasonID == 0 {
		return fmt.Errorf("fixture league season id is required")
	}
	if f.HomeClubSeasonID == 0 || f.AwayClubSeasonID == 0 {
		return fmt.Errorf("fixture home and away club season ids are required")
	}
	return nil
}

func (f Fixture) Key() Key {
	return Key{
		LeagueSeasonID:   f.LeagueSeasonID,
		HomeClubSeasonID: f.HomeClubSeasonID,
		AwayClubSeasonID: f.AwayClubSeasonID,
		Date:             f.Date,
	}
}

// NoDate stands in for the date component of a Key without a date.
const NoDate = "nodate"

// Key is the dedup identity of a fixture within an import.
type Key struct {
	LeagueSeasonID   int64
	HomeClubSeasonID int64
	AwayClubSeasonID int64
	Date             *time.Time
}

// DateToken is the UTC date truncated to the second, or NoDate.
func (k Key) DateToken() string {
	if k.Date == nil || k.Date.IsZero() {
		return NoDate
	}
	return k.Date.UTC().Format("2006-01-02T15:04:05")
}

func (k Key) String() string {
	return fmt.Sprintf("%d|%d|%d|%s", k.LeagueSeasonID, k.HomeClubSeasonID, k.AwayClubSeasonID, k.DateToken())
}
