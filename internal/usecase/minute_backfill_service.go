package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/matchevent"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type MinuteBackfillResult struct {
	MissingBefore int64
	Updated       int64
	MissingAfter  int64
}

// MinuteBackfillService fills minute_text for events imported before the
// column existed.
type MinuteBackfillService struct {
	events matchevent.Repository
	logger *logging.Logger
}

func NewMinuteBackfillService(events matchevent.Repository, logger *logging.Logger) *MinuteBackfillService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MinuteBackfillService{events: events, logger: logger}
}

func (s *MinuteBackfillService) Run(ctx context.Context) (MinuteBackfillResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MinuteBackfillService.Run")
	defer span.End()

	var result MinuteBackfillResult
	before, err := s.events.CountMissingMinuteText(ctx)
	if err != nil {
		return result, fmt.Errorf("count events missing minute text: %w", err)
	}
	result.MissingBefore = before
	s.logger.InfoContext(ctx, "events missing minute text", "count", before)
	if before == 0 {
		return result, nil
	}

	updated, err := s.events.BackfillMinuteText(ctx)
	if err != nil {
		return result, fmt.Errorf("backfill minute text: %w", err)
	}
	result.Updated = updated

	after, err := s.events.CountMissingMinuteText(ctx)
	if err != nil {
		return result, fmt.Errorf("count events missing minute text: %w", err)
	}
	result.MissingAfter = after
	s.logger.InfoContext(ctx, "minute text backfilled", "updated", updated, "remaining", after)

	return result, nil
}
