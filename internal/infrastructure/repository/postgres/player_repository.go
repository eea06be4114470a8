package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

const dateLayout = "2006-01-02"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) FindByTransfermarktID(ctx context.Context, transfermarktID string) (player.Player, bool, error) {
	return r.findOne(ctx, "transfermarkt id", qb.Eq("transfermarkt_id", transfermarktID))
}

func (r *PlayerRepository) FindByLastName(ctx context.Context, lastName string, dateOfBirth *time.Time) (player.Player, bool, error) {
	conditions := []qb.Condition{qb.Eq("last_name", lastName)}
	if dateOfBirth != nil {
		conditions = append(conditions, qb.Expr("date_of_birth = ?::date", dateOfBirth.Format(dateLayout)))
	}
	return r.findOne(ctx, "last name", conditions...)
}

func (r *PlayerRepository) findOne(ctx context.Context, by string, conditions ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by %s query: %w", by, err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by %s: %w", by, classify(err))
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertFromDomain(item), "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player %q: %w", item.FullName(), classify(err))
	}
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	model := playerInsertFromDomain(item)
	query, args, err := qb.Update("players").
		Set("transfermarkt_id", model.TransfermarktID).
		Set("display_name", model.DisplayName).
		Set("position", model.Position).
		Set("status", model.Status).
		Set("contract_expiry", model.ContractExpiry).
		Set("current_market_value", model.CurrentMarketValue).
		Set("previous_market_value", model.PreviousMarketValue).
		Set("height_cm", model.HeightCM).
		Set("weight_kg", model.WeightKG).
		Set("transfer_fee", model.TransferFee).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player %d: %w", item.ID, classify(err))
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return player.Player{}, fmt.Errorf("update player %d: no row updated", item.ID)
	}
	return item, nil
}

func playerInsertFromDomain(item player.Player) playerInsertModel {
	return playerInsertModel{
		TransfermarktID:     nullString(item.TransfermarktID),
		FirstName:           nullString(item.FirstName),
		LastName:            item.LastName,
		DisplayName:         nullString(item.DisplayName),
		DateOfBirth:         nullTime(item.DateOfBirth),
		BirthPlace:          nullString(item.BirthPlace),
		NationalityID:       nullInt64(item.NationalityID),
		Age:                 nullInt(item.Age),
		Position:            nullString(item.Position),
		Status:              nullString(item.Status),
		ContractExpiry:      nullTime(item.ContractExpiry),
		CurrentMarketValue:  nullFloat64(item.CurrentMarketValue),
		PreviousMarketValue: nullFloat64(item.PreviousMarketValue),
		HeightCM:            nullInt(item.HeightCM),
		WeightKG:            nullInt(item.WeightKG),
		TransferFee:         nullString(item.TransferFee),
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                  row.ID,
		TransfermarktID:     stringPtr(row.TransfermarktID),
		FirstName:           stringPtr(row.FirstName),
		LastName:            row.LastName,
		DisplayName:         stringPtr(row.DisplayName),
		DateOfBirth:         timePtr(row.DateOfBirth),
		BirthPlace:          stringPtr(row.BirthPlace),
		NationalityID:       int64Ptr(row.NationalityID),
		Age:                 intPtr(row.Age),
		Position:            stringPtr(row.Position),
		Status:              stringPtr(row.Status),
		ContractExpiry:      timePtr(row.ContractExpiry),
		CurrentMarketValue:  float64Ptr(row.CurrentMarketValue),
		PreviousMarketValue: float64Ptr(row.PreviousMarketValue),
		HeightCM:            intPtr(row.HeightCM),
		WeightKG:            intPtr(row.WeightKG),
		TransferFee:         stringPtr(row.TransferFee),
	}
}

// SquadRepository stores squad memberships and transfers.
type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) FindMembership(ctx context.Context, playerID, clubSeasonID int64) (player.SquadMembership, bool, error) {
	query, args, err := qb.Select("id", "player_id", "club_season_id", "shirt_number").From("squad_memberships").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("club_season_id", clubSeasonID),
		).
		ToSQL()
	if err != nil {
		return player.SquadMembership{}, false, fmt.Errorf("build select squad membership query: %w", err)
	}

	var row squadMembershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.SquadMembership{}, false, nil
		}
		return player.SquadMembership{}, false, fmt.Errorf("select squad membership: %w", classify(err))
	}
	return player.SquadMembership{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		ClubSeasonID: row.ClubSeasonID,
		ShirtNumber:  intPtr(row.ShirtNumber),
	}, true, nil
}

func (r *SquadRepository) CreateMembership(ctx context.Context, item player.SquadMembership) (player.SquadMembership, error) {
	model := squadMembershipInsertModel{
		PlayerID:     item.PlayerID,
		ClubSeasonID: item.ClubSeasonID,
		ShirtNumber:  nullInt(item.ShirtNumber),
	}
	query, args, err := qb.InsertModel("squad_memberships", model, "RETURNING id")
	if err != nil {
		return player.SquadMembership{}, fmt.Errorf("build insert squad membership query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.SquadMembership{}, fmt.Errorf("insert squad membership player=%d club_season=%d: %w", item.PlayerID, item.ClubSeasonID, classify(err))
	}
	return item, nil
}

func (r *SquadRepository) UpdateShirtNumber(ctx context.Context, membershipID int64, shirtNumber int) error {
	query, args, err := qb.Update("squad_memberships").
		Set("shirt_number", shirtNumber).
		Where(qb.Eq("id", membershipID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update shirt number query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update shirt number for membership %d: %w", membershipID, classify(err))
	}
	return nil
}

func (r *SquadRepository) FindTransfer(ctx context.Context, playerID, toClubID int64, date *time.Time) (player.Transfer, bool, error) {
	conditions := []qb.Condition{
		qb.Eq("player_id", playerID),
		qb.Eq("to_club_id", toClubID),
	}
	if date != nil {
		conditions = append(conditions, qb.Expr("date = ?::date", date.Format(dateLayout)))
	}

	query, args, err := qb.Select("*").From("transfers").
		Where(conditions...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Transfer{}, false, fmt.Errorf("build select transfer query: %w", err)
	}

	var row transferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Transfer{}, false, nil
		}
		return player.Transfer{}, false, fmt.Errorf("select transfer: %w", classify(err))
	}
	return player.Transfer{
		ID:          row.ID,
		PlayerID:    row.PlayerID,
		FromClubID:  row.FromClubID,
		ToClubID:    row.ToClubID,
		Date:        row.Date.UTC(),
		Fee:         stringPtr(row.Fee),
		MarketValue: float64Ptr(row.MarketValue),
	}, true, nil
}

func (r *SquadRepository) CreateTransfer(ctx context.Context, item player.Transfer) (player.Transfer, error) {
	model := transferInsertModel{
		PlayerID:    item.PlayerID,
		FromClubID:  item.FromClubID,
		ToClubID:    item.ToClubID,
		Date:        item.Date.UTC(),
		Fee:         nullString(item.Fee),
		MarketValue: nullFloat64(item.MarketValue),
	}
	query, args, err := qb.InsertModel("transfers", model, "RETURNING id")
	if err != nil {
		return player.Transfer{}, fmt.Errorf("build insert transfer query: %w", err)
	}
	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Transfer{}, fmt.Errorf("insert transfer for player %d: %w", item.PlayerID, classify(err))
	}
	return item, nil
}
