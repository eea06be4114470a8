package postgres

import "database/sql"

type fixtureTableModel struct {
	ID               int64           `db:"id"`
	LeagueSeasonID   int64           `db:"league_season_id"`
	MatchWeekID      sql.NullInt64   `db:"match_week_id"`
	WeekNumber       sql.NullInt64   `db:"week_number"`
	Date             sql.NullTime    `db:"date"`
	HomeClubSeasonID int64           `db:"home_club_season_id"`
	AwayClubSeasonID int64           `db:"away_club_season_id"`
	HomeTeamName     string          `db:"home_team_name"`
	AwayTeamName     string          `db:"away_team_name"`
	HomeScore        sql.NullInt64   `db:"home_score"`
	AwayScore        sql.NullInt64   `db:"away_score"`
	HomeXG           sql.NullFloat64 `db:"home_xg"`
	AwayXG           sql.NullFloat64 `db:"away_xg"`
	HomeFormation    sql.NullString  `db:"home_formation"`
	AwayFormation    sql.NullString  `db:"away_formation"`
	Notes            sql.NullString  `db:"notes"`
}

type fixtureInsertModel struct {
	LeagueSeasonID   int64           `db:"league_season_id"`
	MatchWeekID      sql.NullInt64   `db:"match_week_id"`
	WeekNumber       sql.NullInt64   `db:"week_number"`
	Date             sql.NullTime    `db:"date"`
	HomeClubSeasonID int64           `db:"home_club_season_id"`
	AwayClubSeasonID int64           `db:"away_club_season_id"`
	HomeTeamName     string          `db:"home_team_name"`
	AwayTeamName     string          `db:"away_team_name"`
	HomeScore        sql.NullInt64   `db:"home_score"`
	AwayScore        sql.NullInt64   `db:"away_score"`
	HomeXG           sql.NullFloat64 `db:"home_xg"`
	AwayXG           sql.NullFloat64 `db:"away_xg"`
	HomeFormation    sql.NullString  `db:"home_formation"`
	AwayFormation    sql.NullString  `db:"away_formation"`
	Notes            sql.NullString  `db:"notes"`
}

var fixtureColumns = []string{
	"id", "league_season_id", "match_week_id", "week_number", "date",
	"home_club_season_id", "away_club_season_id", "home_team_name", "away_team_name",
	"home_score", "away_score", "home_xg", "away_xg", "home_formation", "away_formation", "notes",
}
