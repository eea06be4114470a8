package matchevent

import "context"

// Repository describes match-event persistence needs. Create returns an error
// marked as a unique violation when the natural key already exists.
type Repository interface {
	Create(ctx context.Context, item Event) (Event, error)
	CountMissingMinuteText(ctx context.Context) (int64, error)
	BackfillMinuteText(ctx context.Context) (int64, error)
}
