package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/gkperf"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type GKPerfRepository struct {
	db *sqlx.DB
}

func NewGKPerfRepository(db *sqlx.DB) *GKPerfRepository {
	return &GKPerfRepository{db: db}
}

func (r *GKPerfRepository) GetByFixture(ctx context.Context, fixtureID int64) (gkperf.Performance, bool, error) {
	query, args, err := qb.Select("*").From("gk_perfs").
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return gkperf.Performance{}, false, fmt.Errorf("build select gk perf by fixture query: %w", err)
	}

	var row gkPerfTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gkperf.Performance{}, false, nil
		}
		return gkperf.Performance{}, false, fmt.Errorf("select gk perf by fixture: %w", classify(err))
	}
	return gkperf.Performance{
		ID:              row.ID,
		FixtureID:       row.FixtureID,
		HomeGKFirstName: stringPtr(row.HomeGKFirstName),
		HomeGKLastName:  stringPtr(row.HomeGKLastName),
		AwayGKFirstName: stringPtr(row.AwayGKFirstName),
		AwayGKLastName:  stringPtr(row.AwayGKLastName),
		HomeRating:      float64Ptr(row.HomeRating),
		AwayRating:      float64Ptr(row.AwayRating),
		HomeSaves:       float64Ptr(row.HomeSaves),
		AwaySaves:       float64Ptr(row.AwaySaves),
	}, true, nil
}

func (r *GKPerfRepository) Create(ctx context.Context, item gkperf.Performance) (gkperf.Performance, error) {
	model := gkPerfInsertModel{
		FixtureID:       item.FixtureID,
		HomeGKFirstName: nullString(item.HomeGKFirstName),
		HomeGKLastName:  nullString(item.HomeGKLastName),
		AwayGKFirstName: nullString(item.AwayGKFirstName),
		AwayGKLastName:  nullString(item.AwayGKLastName),
		HomeRating:      nullFloat64(item.HomeRating),
		AwayRating:      nullFloat64(item.AwayRating),
		HomeSaves:       nullFloat64(item.HomeSaves),
		AwaySaves:       nullFloat64(item.AwaySaves),
	}
	query, args, err := qb.InsertModel("gk_perfs", model, "RETURNING id")
	if err != nil {
		return gkperf.Performance{}, fmt.Errorf("build insert gk perf query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return gkperf.Performance{}, fmt.Errorf("insert gk perf for fixture %d: %w", item.FixtureID, classify(err))
	}
	return item, nil
}
