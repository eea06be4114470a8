package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/club"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// FindByName matches the stored name exactly, case included.
func (r *ClubRepository) FindByName(ctx context.Context, name string) (club.Club, bool, error) {
	query, args, err := qb.Select("id", "name", "nation_id").From("clubs").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club by name query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club by name: %w", classify(err))
	}
	return club.Club{ID: row.ID, Name: row.Name, NationID: int64Ptr(row.NationID)}, true, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) (club.Club, error) {
	model := clubInsertModel{Name: item.Name, NationID: nullInt64(item.NationID)}
	query, args, err := qb.InsertModel("clubs", model, "RETURNING id")
	if err != nil {
		return club.Club{}, fmt.Errorf("build insert club query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return club.Club{}, fmt.Errorf("insert club %q: %w", item.Name, classify(err))
	}
	return item, nil
}

func (r *ClubRepository) FindSeason(ctx context.Context, clubID, leagueSeasonID int64) (club.Season, bool, error) {
	query, args, err := qb.Select("id", "club_id", "league_season_id").From("club_seasons").
		Where(
			qb.Eq("club_id", clubID),
			qb.Eq("league_season_id", leagueSeasonID),
		).
		ToSQL()
	if err != nil {
		return club.Season{}, false, fmt.Errorf("build select club season query: %w", err)
	}

	var row clubSeasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Season{}, false, nil
		}
		return club.Season{}, false, fmt.Errorf("select club season: %w", classify(err))
	}
	return club.Season{ID: row.ID, ClubID: row.ClubID, LeagueSeasonID: row.LeagueSeasonID}, true, nil
}

func (r *ClubRepository) CreateSeason(ctx context.Context, item club.Season) (club.Season, error) {
	model := clubSeasonInsertModel{ClubID: item.ClubID, LeagueSeasonID: item.LeagueSeasonID}
	query, args, err := qb.InsertModel("club_seasons", model, "RETURNING id")
	if err != nil {
		return club.Season{}, fmt.Errorf("build insert club season query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return club.Season{}, fmt.Errorf("insert club season club=%d league_season=%d: %w", item.ClubID, item.LeagueSeasonID, classify(err))
	}
	return item, nil
}
