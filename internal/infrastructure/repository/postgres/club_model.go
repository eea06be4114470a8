package postgres

import "database/sql"

type clubTableModel struct {
	ID       int64         `db:"id"`
	Name     string        `db:"name"`
	NationID sql.NullInt64 `db:"nation_id"`
}

type clubInsertModel struct {
	Name     string        `db:"name"`
	NationID sql.NullInt64 `db:"nation_id"`
}

type clubSeasonTableModel struct {
	ID             int64 `db:"id"`
	ClubID         int64 `db:"club_id"`
	LeagueSeasonID int64 `db:"league_season_id"`
}

type clubSeasonInsertModel struct {
	ClubID         int64 `db:"club_id"`
	LeagueSeasonID int64 `db:"league_season_id"`
}
