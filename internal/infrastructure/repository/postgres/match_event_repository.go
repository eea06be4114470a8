package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

// Create relies on the (fixture_id, key_hash) unique index; a duplicate comes
// back marked as a unique violation.
func (r *MatchEventRepository) Create(ctx context.Context, item matchevent.Event) (matchevent.Event, error) {
	model := matchEventInsertModel{
		FixtureID:       item.FixtureID,
		Minute:          nullInt(item.Minute),
		MinuteText:      nullString(item.MinuteText),
		TeamName:        nullString(item.TeamName),
		PlayerFirstName: nullString(item.PlayerFirstName),
		PlayerLastName:  nullString(item.PlayerLastName),
		PlayerPosition:  nullString(item.PlayerPosition),
		PlayerRating:    nullFloat64(item.PlayerRating),
		ShotArea:        nullString(item.ShotArea),
		ShotType:        nullString(item.ShotType),
		LeadUp:          nullString(item.LeadUp),
		XG:              nullFloat64(item.XG),
		XGOT:            nullFloat64(item.XGOT),
		BigChance:       item.BigChance,
		Outcome:         nullString(item.Outcome),
		ScoreAtShot:     nullString(item.ScoreAtShot),
		AssistFirstName: nullString(item.AssistFirstName),
		AssistLastName:  nullString(item.AssistLastName),
		Notes:           nullString(item.Notes),
		KeyHash:         item.KeyHash(),
	}
	query, args, err := qb.InsertModel("match_events", model, "RETURNING id")
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("build insert match event query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return matchevent.Event{}, fmt.Errorf("insert match event for fixture %d: %w", item.FixtureID, classify(err))
	}
	return item, nil
}

func (r *MatchEventRepository) CountMissingMinuteText(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("match_events").
		Where(
			qb.IsNotNull("minute"),
			qb.IsNull("minute_text"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count missing minute text query: %w", err)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count missing minute text: %w", classify(err))
	}
	return count, nil
}

func (r *MatchEventRepository) BackfillMinuteText(ctx context.Context) (int64, error) {
	query, args, err := qb.Update("match_events").
		SetExpr("minute_text", "minute::text").
		Where(
			qb.IsNotNull("minute"),
			qb.IsNull("minute_text"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build backfill minute text query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("backfill minute text: %w", classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read backfill rows affected: %w", err)
	}
	return affected, nil
}
