package club

import "context"

// Repository describes club and club-season persistence needs.
type Repository interface {
	FindByName(ctx context.Context, name string) (Club, bool, error)
	Create(ctx context.Context, item Club) (Club, error)

	FindSeason(ctx context.Context, clubID, leagueSeasonID int64) (Season, bool, error)
	CreateSeason(ctx context.Context, item Season) (Season, error)
}
