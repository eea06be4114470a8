package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/matchweek"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type MatchWeekRepository struct {
	db *sqlx.DB
}

func NewMatchWeekRepository(db *sqlx.DB) *MatchWeekRepository {
	return &MatchWeekRepository{db: db}
}

func (r *MatchWeekRepository) Find(ctx context.Context, leagueSeasonID int64, weekNumber int) (matchweek.MatchWeek, bool, error) {
	query, args, err := qb.Select("id", "league_season_id", "week_number").From("match_weeks").
		Where(
			qb.Eq("league_season_id", leagueSeasonID),
			qb.Eq("week_number", weekNumber),
		).
		ToSQL()
	if err != nil {
		return matchweek.MatchWeek{}, false, fmt.Errorf("build select match week query: %w", err)
	}

	var row matchWeekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchweek.MatchWeek{}, false, nil
		}
		return matchweek.MatchWeek{}, false, fmt.Errorf("select match week: %w", classify(err))
	}
	return matchweek.MatchWeek{ID: row.ID, LeagueSeasonID: row.LeagueSeasonID, WeekNumber: row.WeekNumber}, true, nil
}

func (r *MatchWeekRepository) Create(ctx context.Context, item matchweek.MatchWeek) (matchweek.MatchWeek, error) {
	model := matchWeekInsertModel{LeagueSeasonID: item.LeagueSeasonID, WeekNumber: item.WeekNumber}
	query, args, err := qb.InsertModel("match_weeks", model, "RETURNING id")
	if err != nil {
		return matchweek.MatchWeek{}, fmt.Errorf("build insert match week query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return matchweek.MatchWeek{}, fmt.Errorf("insert match week %d: %w", item.WeekNumber, classify(err))
	}
	return item, nil
}
