package fixture

import "context"

// Repository describes fixture persistence needs from the import use cases.
// FindByKey matches a nil key date against fixtures of the same pairing
// regardless of their date.
type Repository interface {
	FindByKey(ctx context.Context, key Key) (Fixture, bool, error)
	Create(ctx context.Context, item Fixture) (Fixture, error)
}
