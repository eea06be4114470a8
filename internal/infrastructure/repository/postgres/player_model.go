package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID                  int64           `db:"id"`
	TransfermarktID     sql.NullString  `db:"transfermarkt_id"`
	FirstName           sql.NullString  `db:"first_name"`
	LastName            string          `db:"last_name"`
	DisplayName         sql.NullString  `db:"display_name"`
	DateOfBirth         sql.NullTime    `db:"date_of_birth"`
	BirthPlace          sql.NullString  `db:"birth_place"`
	NationalityID       sql.NullInt64   `db:"nationality_id"`
	Age                 sql.NullInt64   `db:"age"`
	Position            sql.NullString  `db:"position"`
	Status              sql.NullString  `db:"status"`
	ContractExpiry      sql.NullTime    `db:"contract_expiry"`
	CurrentMarketValue  sql.NullFloat64 `db:"current_market_value"`
	PreviousMarketValue sql.NullFloat64 `db:"previous_market_value"`
	HeightCM            sql.NullInt64   `db:"height_cm"`
	WeightKG            sql.NullInt64   `db:"weight_kg"`
	TransferFee         sql.NullString  `db:"transfer_fee"`
}

type playerInsertModel struct {
	TransfermarktID     sql.NullString  `db:"transfermarkt_id"`
	FirstName           sql.NullString  `db:"first_name"`
	LastName            string          `db:"last_name"`
	DisplayName         sql.NullString  `db:"display_name"`
	DateOfBirth         sql.NullTime    `db:"date_of_birth"`
	BirthPlace          sql.NullString  `db:"birth_place"`
	NationalityID       sql.NullInt64   `db:"nationality_id"`
	Age                 sql.NullInt64   `db:"age"`
	Position            sql.NullString  `db:"position"`
	Status              sql.NullString  `db:"status"`
	ContractExpiry      sql.NullTime    `db:"contract_expiry"`
	CurrentMarketValue  sql.NullFloat64 `db:"current_market_value"`
	PreviousMarketValue sql.NullFloat64 `db:"previous_market_value"`
	HeightCM            sql.NullInt64   `db:"height_cm"`
	WeightKG            sql.NullInt64   `db:"weight_kg"`
	TransferFee         sql.NullString  `db:"transfer_fee"`
}

type squadMembershipTableModel struct {
	ID           int64         `db:"id"`
	PlayerID     int64         `db:"player_id"`
	ClubSeasonID int64         `db:"club_season_id"`
	ShirtNumber  sql.NullInt64 `db:"shirt_number"`
}

type squadMembershipInsertModel struct {
	PlayerID     int64         `db:"player_id"`
	ClubSeasonID int64         `db:"club_season_id"`
	ShirtNumber  sql.NullInt64 `db:"shirt_number"`
}

type transferTableModel struct {
	ID          int64           `db:"id"`
	PlayerID    int64           `db:"player_id"`
	FromClubID  int64           `db:"from_club_id"`
	ToClubID    int64           `db:"to_club_id"`
	Date        time.Time       `db:"date"`
	Fee         sql.NullString  `db:"fee"`
	MarketValue sql.NullFloat64 `db:"market_value"`
}

type transferInsertModel struct {
	PlayerID    int64           `db:"player_id"`
	FromClubID  int64           `db:"from_club_id"`
	ToClubID    int64           `db:"to_club_id"`
	Date        time.Time       `db:"date"`
	Fee         sql.NullString  `db:"fee"`
	MarketValue sql.NullFloat64 `db:"market_value"`
}
