package postgres

import "database/sql"

type nationTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type nationInsertModel struct {
	Name string `db:"name"`
}

type seasonTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type seasonInsertModel struct {
	Name string `db:"name"`
}

type leagueTableModel struct {
	ID       int64         `db:"id"`
	Name     string        `db:"name"`
	NationID sql.NullInt64 `db:"nation_id"`
}

type leagueInsertModel struct {
	Name     string        `db:"name"`
	NationID sql.NullInt64 `db:"nation_id"`
}

type leagueSeasonTableModel struct {
	ID       int64 `db:"id"`
	LeagueID int64 `db:"league_id"`
	SeasonID int64 `db:"season_id"`
}

type leagueSeasonInsertModel struct {
	LeagueID int64 `db:"league_id"`
	SeasonID int64 `db:"season_id"`
}

type matchWeekTableModel struct {
	ID             int64 `db:"id"`
	LeagueSeasonID int64 `db:"league_season_id"`
	WeekNumber     int   `db:"week_number"`
}

type matchWeekInsertModel struct {
	LeagueSeasonID int64 `db:"league_season_id"`
	WeekNumber     int   `db:"week_number"`
}
