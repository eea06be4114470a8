package postgres

import "database/sql"

type matchEventInsertModel struct {
	FixtureID       int64           `db:"fixture_id"`
	Minute          sql.NullInt64   `db:"minute"`
	MinuteText      sql.NullString  `db:"minute_text"`
	TeamName        sql.NullString  `db:"team_name"`
	PlayerFirstName sql.NullString  `db:"player_first_name"`
	PlayerLastName  sql.NullString  `db:"player_last_name"`
	PlayerPosition  sql.NullString  `db:"player_position"`
	PlayerRating    sql.NullFloat64 `db:"player_rating"`
	ShotArea        sql.NullString  `db:"shot_area"`
	ShotType        sql.NullString  `db:"shot_type"`
	LeadUp          sql.NullString  `db:"lead_up"`
	XG              sql.NullFloat64 `db:"xg"`
	XGOT            sql.NullFloat64 `db:"xgot"`
	BigChance       bool            `db:"big_chance"`
	Outcome         sql.NullString  `db:"outcome"`
	ScoreAtShot     sql.NullString  `db:"score_at_shot"`
	AssistFirstName sql.NullString  `db:"assist_first_name"`
	AssistLastName  sql.NullString  `db:"assist_last_name"`
	Notes           sql.NullString  `db:"notes"`
	KeyHash         string          `db:"key_hash"`
}

type gkPerfTableModel struct {
	ID              int64           `db:"id"`
	FixtureID       int64           `db:"fixture_id"`
	HomeGKFirstName sql.NullString  `db:"home_gk_first_name"`
	HomeGKLastName  sql.NullString  `db:"home_gk_last_name"`
	AwayGKFirstName sql.NullString  `db:"away_gk_first_name"`
	AwayGKLastName  sql.NullString  `db:"away_gk_last_name"`
	HomeRating      sql.NullFloat64 `db:"home_rating"`
	AwayRating      sql.NullFloat64 `db:"away_rating"`
	HomeSaves       sql.NullFloat64 `db:"home_saves"`
	AwaySaves       sql.NullFloat64 `db:"away_saves"`
}

type gkPerfInsertModel struct {
	FixtureID       int64           `db:"fixture_id"`
	HomeGKFirstName sql.NullString  `db:"home_gk_first_name"`
	HomeGKLastName  sql.NullString  `db:"home_gk_last_name"`
	AwayGKFirstName sql.NullString  `db:"away_gk_first_name"`
	AwayGKLastName  sql.NullString  `db:"away_gk_last_name"`
	HomeRating      sql.NullFloat64 `db:"home_rating"`
	AwayRating      sql.NullFloat64 `db:"away_rating"`
	HomeSaves       sql.NullFloat64 `db:"home_saves"`
	AwaySaves       sql.NullFloat64 `db:"away_saves"`
}
