package nation

import "context"

// Repository describes nation persistence needs from use cases.
type Repository interface {
	FindByName(ctx context.Context, name string) (Nation, bool, error)
	Create(ctx context.Context, item Nation) (Nation, error)
}
