package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	FindByName(ctx context.Context, name string) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
}
