package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/league"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	query, args, err := qb.Select("id", "name", "nation_id").From("leagues").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", classify(err))
	}
	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) FindByName(ctx context.Context, name string, nationID *int64) (league.League, bool, error) {
	query, args, err := qb.Select("id", "name", "nation_id").From("leagues").
		Where(
			qb.Eq("name", name),
			qb.NotDistinct("nation_id", nullInt64(nationID)),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build select league by name query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league by name: %w", classify(err))
	}
	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	model := leagueInsertModel{Name: item.Name, NationID: nullInt64(item.NationID)}
	query, args, err := qb.InsertModel("leagues", model, "RETURNING id")
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.League{}, fmt.Errorf("insert league %q: %w", item.Name, classify(err))
	}
	return item, nil
}

func (r *LeagueRepository) FindSeason(ctx context.Context, leagueID, seasonID int64) (league.Season, bool, error) {
	query, args, err := qb.Select("id", "league_id", "season_id").From("league_seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_id", seasonID),
		).
		ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build select league season query: %w", err)
	}

	var row leagueSeasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, fmt.Errorf("select league season: %w", classify(err))
	}
	return league.Season{ID: row.ID, LeagueID: row.LeagueID, SeasonID: row.SeasonID}, true, nil
}

func (r *LeagueRepository) CreateSeason(ctx context.Context, item league.Season) (league.Season, error) {
	model := leagueSeasonInsertModel{LeagueID: item.LeagueID, SeasonID: item.SeasonID}
	query, args, err := qb.InsertModel("league_seasons", model, "RETURNING id")
	if err != nil {
		return league.Season{}, fmt.Errorf("build insert league season query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.Season{}, fmt.Errorf("insert league season league=%d season=%d: %w", item.LeagueID, item.SeasonID, classify(err))
	}
	return item, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{ID: row.ID, Name: row.Name, NationID: int64Ptr(row.NationID)}
}
