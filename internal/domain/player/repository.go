package player

import (
	"context"
	"time"
)

// Repository describes player persistence needs from the squad import.
type Repository interface {
	FindByTransfermarktID(ctx context.Context, transfermarktID string) (Player, bool, error)
	// FindByLastName matches dateOfBirth too when it is non-nil.
	FindByLastName(ctx context.Context, lastName string, dateOfBirth *time.Time) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, error)
}

type SquadRepository interface {
	FindMembership(ctx context.Context, playerID, clubSeasonID int64) (SquadMembership, bool, error)
	CreateMembership(ctx context.Context, item SquadMembership) (SquadMembership, error)
	UpdateShirtNumber(ctx context.Context, membershipID int64, shirtNumber int) error
}

type TransferRepository interface {
	// FindTransfer ignores the date when date is nil.
	FindTransfer(ctx context.Context, playerID, toClubID int64, date *time.Time) (Transfer, bool, error)
	CreateTransfer(ctx context.Context, item Transfer) (Transfer, error)
}
