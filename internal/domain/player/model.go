package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is identified by Transfermarkt id when known, otherwise by last name
// and date of birth.
type Player struct {
	ID                  int64
	TransfermarktID     *string
	FirstName           *string
	LastName            string
	DisplayName         *string
	DateOfBirth         *time.Time
	BirthPlace          *string
	NationalityID       *int64
	Age                 *int
	Position            *string
	Status              *string
	ContractExpiry      *time.Time
	CurrentMarketValue  *float64
	PreviousMarketValue *float64
	HeightCM            *int
	WeightKG            *int
	TransferFee         *string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	return nil
}

// FullName is used in progress logs.
func (p Player) FullName() string {
	if p.FirstName == nil || *p.FirstName == "" {
		return p.LastName
	}
	return *p.FirstName + " " + p.LastName
}

// Merge overlays the non-nil fields of update onto p, the way a re-import
// refreshes an existing player without erasing known data. Identity fields
// are left alone except a missing Transfermarkt id.
func (p Player) Merge(update Player) Player {
	out := p
	if update.DisplayName != nil {
		out.DisplayName = update.DisplayName
	}
	if update.CurrentMarketValue != nil {
		out.CurrentMarketValue = update.CurrentMarketValue
	}
	if update.PreviousMarketValue != nil {
		out.PreviousMarketValue = update.PreviousMarketValue
	}
	if update.Position != nil {
		out.Position = update.Position
	}
	if update.Status != nil {
		out.Status = update.Status
	}
	if update.ContractExpiry != nil {
		out.ContractExpiry = update.ContractExpiry
	}
	if update.HeightCM != nil {
		out.HeightCM = update.HeightCM
	}
	if update.WeightKG != nil {
		out.WeightKG = update.WeightKG
	}
	if update.TransferFee != nil {
		out.TransferFee = update.TransferFee
	}
	if out.TransfermarktID == nil && update.TransfermarktID != nil {
		out.TransfermarktID = update.TransfermarktID
	}
	return out
}

// SquadMembership places a player in a club season's squad.
type SquadMembership struct {
	ID           int64
	PlayerID     int64
	ClubSeasonID int64
	ShirtNumber  *int
}

// Transfer records a move between two clubs.
type Transfer struct {
	ID          int64
	PlayerID    int64
	FromClubID  int64
	ToClubID    int64
	Date        time.Time
	Fee         *string
	MarketValue *float64
}
