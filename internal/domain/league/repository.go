package league

import "context"

// Repository describes league and league-season persistence needs.
type Repository interface {
	GetByID(ctx context.Context, id int64) (League, bool, error)
	FindByName(ctx context.Context, name string, nationID *int64) (League, bool, error)
	Create(ctx context.Context, item League) (League, error)

	FindSeason(ctx context.Context, leagueID, seasonID int64) (Season, bool, error)
	CreateSeason(ctx context.Context, item Season) (Season, error)
}
