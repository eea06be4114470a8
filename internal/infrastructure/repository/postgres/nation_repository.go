package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/nation"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type NationRepository struct {
	db *sqlx.DB
}

func NewNationRepository(db *sqlx.DB) *NationRepository {
	return &NationRepository{db: db}
}

func (r *NationRepository) FindByName(ctx context.Context, name string) (nation.Nation, bool, error) {
	query, args, err := qb.Select("id", "name").From("nations").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return nation.Nation{}, false, fmt.Errorf("build select nation by name query: %w", err)
	}

	var row nationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nation.Nation{}, false, nil
		}
		return nation.Nation{}, false, fmt.Errorf("select nation by name: %w", classify(err))
	}
	return nation.Nation{ID: row.ID, Name: row.Name}, true, nil
}

func (r *NationRepository) Create(ctx context.Context, item nation.Nation) (nation.Nation, error) {
	query, args, err := qb.InsertModel("nations", nationInsertModel{Name: item.Name}, "RETURNING id")
	if err != nil {
		return nation.Nation{}, fmt.Errorf("build insert nation query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return nation.Nation{}, fmt.Errorf("insert nation %q: %w", item.Name, classify(err))
	}
	return item, nil
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) FindByName(ctx context.Context, name string) (season.Season, bool, error) {
	query, args, err := qb.Select("id", "name").From("seasons").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season by name query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season by name: %w", classify(err))
	}
	return season.Season{ID: row.ID, Name: row.Name}, true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonInsertModel{Name: item.Name}, "RETURNING id")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return season.Season{}, fmt.Errorf("insert season %q: %w", item.Name, classify(err))
	}
	return item, nil
}
