package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// FindByKey ignores the date column when the key carries no date.
func (r *FixtureRepository) FindByKey(ctx context.Context, key fixture.Key) (fixture.Fixture, bool, error) {
	conditions := []qb.Condition{
		qb.Eq("league_season_id", key.LeagueSeasonID),
		qb.Eq("home_club_season_id", key.HomeClubSeasonID),
		qb.Eq("away_club_season_id", key.AwayClubSeasonID),
	}
	if date := nullTime(key.Date); date.Valid {
		conditions = append(conditions, qb.Expr("date = ?", date.Time.Truncate(time.Second)))
	}

	query, args, err := qb.Select(fixtureColumns...).From("fixtures").
		Where(conditions...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build select fixture by key query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("select fixture by key %s: %w", key, classify(err))
	}
	return fixtureFromRow(row), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	date := nullTime(item.Date)
	if date.Valid {
		date.Time = date.Time.Truncate(time.Second)
	}
	model := fixtureInsertModel{
		LeagueSeasonID:   item.LeagueSeasonID,
		MatchWeekID:      nullInt64(item.MatchWeekID),
		WeekNumber:       nullInt(item.WeekNumber),
		Date:             date,
		HomeClubSeasonID: item.HomeClubSeasonID,
		AwayClubSeasonID: item.AwayClubSeasonID,
		HomeTeamName:     item.HomeTeamName,
		AwayTeamName:     item.AwayTeamName,
		HomeScore:        nullInt(item.HomeScore),
		AwayScore:        nullInt(item.AwayScore),
		HomeXG:           nullFloat64(item.HomeXG),
		AwayXG:           nullFloat64(item.AwayXG),
		HomeFormation:    nullString(item.HomeFormation),
		AwayFormation:    nullString(item.AwayFormation),
		Notes:            nullString(item.Notes),
	}
	query, args, err := qb.InsertModel("fixtures", model, "RETURNING id")
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build insert fixture query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return fixture.Fixture{}, fmt.Errorf("insert fixture %s: %w", item.Key(), classify(err))
	}
	return item, nil
}

func fixtureFromRow(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		ID:               row.ID,
		LeagueSeasonID:   row.LeagueSeasonID,
		MatchWeekID:      int64Ptr(row.MatchWeekID),
		WeekNumber:       intPtr(row.WeekNumber),
		Date:             timePtr(row.Date),
		HomeClubSeasonID: row.HomeClubSeasonID,
		AwayClubSeasonID: row.AwayClubSeasonID,
		HomeTeamName:     row.HomeTeamName,
		AwayTeamName:     row.AwayTeamName,
		HomeScore:        intPtr(row.HomeScore),
		AwayScore:        intPtr(row.AwayScore),
		HomeXG:           float64Ptr(row.HomeXG),
		AwayXG:           float64Ptr(row.AwayXG),
		HomeFormation:    stringPtr(row.HomeFormation),
		AwayFormation:    stringPtr(row.AwayFormation),
		Notes:            stringPtr(row.Notes),
	}
}
