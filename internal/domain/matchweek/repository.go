package matchweek

import "context"

// Repository describes match-week persistence needs from use cases.
type Repository interface {
	Find(ctx context.Context, leagueSeasonID int64, weekNumber int) (MatchWeek, bool, error)
	Create(ctx context.Context, item MatchWeek) (MatchWeek, error)
}
