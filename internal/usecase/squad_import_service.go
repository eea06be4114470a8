package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/platform/cellparse"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

type SquadImportOptions struct {
	DateOrder          cellparse.Order
	NormalizeClubNames bool
	ProgressEvery      int
}

type SquadImportInput struct {
	Source string `validate:"omitempty,max=1024"`
	RunID  string
}

type SquadImportResult struct {
	RunID              string
	RowsRead           int
	PlayersCreated     int
	PlayersUpdated     int
	MembershipsCreated int
	MembershipsUpdated int
	TransfersCreated   int
	Failed             []FailedRow
	ResolverCache      ResolverCacheStats
	Duration           time.Duration
}

var errMissingCoreFields = errors.New("missing core fields")

// SquadImportService loads players, squad memberships and transfers from a
// squad sheet. Nations, seasons, leagues and clubs are created on demand.
type SquadImportService struct {
	repos     ImportRepositories
	options   SquadImportOptions
	validator *validator.Validate
	logger    *logging.Logger
	now       func() time.Time
}

func NewSquadImportService(repos ImportRepositories, options SquadImportOptions, logger *logging.Logger) *SquadImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if options.ProgressEvery <= 0 {
		options.ProgressEvery = 100
	}
	return &SquadImportService{
		repos:     repos,
		options:   options,
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

type squadRowOutcome struct {
	playerCreated     bool
	playerUpdated     bool
	membershipCreated bool
	membershipUpdated bool
	transferCreated   bool
}

func (s *SquadImportService) Run(ctx context.Context, input SquadImportInput, rows iter.Seq2[sheet.Row, error]) (SquadImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadImportService.Run")
	defer span.End()

	if err := s.validator.StructCtx(ctx, input); err != nil {
		return SquadImportResult{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	if rows == nil {
		return SquadImportResult{}, fmt.Errorf("%w: rows are required", ErrInvalidInput)
	}
	if input.RunID == "" {
		input.RunID = id.NewRunID()
	}

	started := s.now()
	logger := s.logger.With("run_id", input.RunID)
	resolver := NewEntityResolver(s.repos, ResolverOptions{
		CreateClubs:    true,
		NormalizeNames: s.options.NormalizeClubNames,
	}, nil, logger)
	dates := cellparse.DateParser{Order: s.options.DateOrder}
	result := SquadImportResult{RunID: input.RunID}

	logger.InfoContext(ctx, "squad import started", "source", input.Source)
	for row, err := range rows {
		if err != nil {
			result.Duration = s.now().Sub(started)
			return result, fmt.Errorf("read rows: %w", err)
		}
		if err := ctx.Err(); err != nil {
			result.Duration = s.now().Sub(started)
			return result, err
		}
		result.RowsRead++

		outcome, err := s.importRow(ctx, resolver, dates, row)
		if err != nil {
			result.Failed = append(result.Failed, FailedRow{Row: row.Number, Reason: err.Error(), Cells: rowStrings(row)})
			logger.ErrorContext(ctx, "row failed", "row", row.Number, "error", err)
		} else {
			if outcome.playerCreated {
				result.PlayersCreated++
			}
			if outcome.playerUpdated {
				result.PlayersUpdated++
			}
			if outcome.membershipCreated {
				result.MembershipsCreated++
			}
			if outcome.membershipUpdated {
				result.MembershipsUpdated++
			}
			if outcome.transferCreated {
				result.TransfersCreated++
			}
		}

		if result.RowsRead%s.options.ProgressEvery == 0 {
			logger.InfoContext(ctx, "squad import progress", "rows", result.RowsRead)
		}
	}

	result.Duration = s.now().Sub(started)
	result.ResolverCache = resolver.CacheStats()
	logger.InfoContext(ctx, "squad import finished",
		"rows_read", result.RowsRead,
		"players_created", result.PlayersCreated,
		"players_updated", result.PlayersUpdated,
		"memberships_created", result.MembershipsCreated,
		"transfers_created", result.TransfersCreated,
		"failed", len(result.Failed),
		"resolver_cache_hits", result.ResolverCache.Hits,
		"resolver_cache_misses", result.ResolverCache.Misses,
		"duration", result.Duration,
	)
	return result, nil
}

func (s *SquadImportService) importRow(ctx context.Context, resolver *EntityResolver, dates cellparse.DateParser, row sheet.Row) (squadRowOutcome, error) {
	var outcome squadRowOutcome

	country := cellparse.String(row.Get(squadColCountry))
	leagueName := cellparse.String(row.Get(squadColLeague))
	seasonName := cellparse.String(row.Get(squadColSeason))
	clubName := cellparse.String(row.Get(squadColClub))
	firstName := cellparse.Text(row.Get(squadColFirstName))
	lastName := cellparse.Text(row.Get(squadColLastName))
	displayName := cellparse.Text(row.Get(squadColDisplayName))
	if country == "" || leagueName == "" || seasonName == "" || clubName == "" ||
		(firstName == nil && lastName == nil && displayName == nil) {
		return outcome, errMissingCoreFields
	}

	nationID, err := resolver.ResolveNation(ctx, country)
	if err != nil {
		return outcome, err
	}
	seasonID, err := resolver.ResolveSeason(ctx, seasonName)
	if err != nil {
		return outcome, err
	}
	leagueID, err := resolver.ResolveLeague(ctx, leagueName, nationID)
	if err != nil {
		return outcome, err
	}
	leagueSeason, err := resolver.ResolveLeagueSeason(ctx, leagueID, seasonID)
	if err != nil {
		return outcome, err
	}
	clubID, err := resolver.ResolveClub(ctx, clubName, &nationID)
	if err != nil {
		return outcome, err
	}
	clubSeasonID, err := resolver.ResolveClubSeason(ctx, clubID, leagueSeason.ID)
	if err != nil {
		return outcome, err
	}

	candidate := player.Player{
		TransfermarktID:     cellparse.Text(row.Get(squadColTransfermarktID)),
		FirstName:           firstName,
		LastName:            playerLastName(lastName, displayName, firstName),
		DisplayName:         displayName,
		DateOfBirth:         dates.Parse(row.Get(squadColDateOfBirth)).Ptr(),
		BirthPlace:          cellparse.Text(row.Get(squadColBirthPlace)),
		Age:                 cellparse.Int(row.Get(squadColAge)),
		Position:            cellparse.Text(row.Get(squadColPosition)),
		Status:              cellparse.Text(row.Get(squadColStatus)),
		ContractExpiry:      dates.Parse(row.Get(squadColContractExpiry)).Ptr(),
		CurrentMarketValue:  cellparse.Number(row.Get(squadColMarketValue)),
		PreviousMarketValue: cellparse.Number(row.Get(squadColPrevMarketValue)),
		HeightCM:            cellparse.Int(row.Get(squadColHeight)),
		WeightKG:            cellparse.Int(row.Get(squadColWeight)),
		TransferFee:         cellparse.Text(row.Get(squadColTransferFee)),
	}
	if nationality := cellparse.String(row.Get(squadColNationality)); nationality != "" {
		nationalityID, err := resolver.ResolveNation(ctx, nationality)
		if err != nil {
			return outcome, err
		}
		candidate.NationalityID = &nationalityID
	}
	if err := candidate.Validate(); err != nil {
		return outcome, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, created, err := s.upsertPlayer(ctx, candidate)
	if err != nil {
		return outcome, err
	}
	outcome.playerCreated = created
	outcome.playerUpdated = !created

	shirtNumber := cellparse.Int(row.Get(squadColShirtNumber))
	membership, ok, err := s.repos.Squads.FindMembership(ctx, stored.ID, clubSeasonID)
	if err != nil {
		return outcome, fmt.Errorf("find squad membership: %w", err)
	}
	switch {
	case !ok:
		if _, err := s.repos.Squads.CreateMembership(ctx, player.SquadMembership{
			PlayerID:     stored.ID,
			ClubSeasonID: clubSeasonID,
			ShirtNumber:  shirtNumber,
		}); err != nil {
			return outcome, fmt.Errorf("create squad membership: %w", err)
		}
		outcome.membershipCreated = true
	case shirtNumber != nil:
		if err := s.repos.Squads.UpdateShirtNumber(ctx, membership.ID, *shirtNumber); err != nil {
			return outcome, fmt.Errorf("update shirt number: %w", err)
		}
		outcome.membershipUpdated = true
	}

	transferCreated, err := s.recordTransfer(ctx, resolver, dates, row, stored.ID, clubID)
	if err != nil {
		return outcome, err
	}
	outcome.transferCreated = transferCreated

	return outcome, nil
}

// upsertPlayer matches by Transfermarkt id, then by last name and date of
// birth. A match is refreshed with the non-empty fields of candidate.
func (s *SquadImportService) upsertPlayer(ctx context.Context, candidate player.Player) (player.Player, bool, error) {
	var (
		existing player.Player
		found    bool
		err      error
	)
	if candidate.TransfermarktID != nil {
		existing, found, err = s.repos.Players.FindByTransfermarktID(ctx, *candidate.TransfermarktID)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("find player by transfermarkt id: %w", err)
		}
	}
	if !found {
		existing, found, err = s.repos.Players.FindByLastName(ctx, candidate.LastName, candidate.DateOfBirth)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("find player by last name: %w", err)
		}
	}

	if !found {
		created, err := s.repos.Players.Create(ctx, candidate)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("create player %s: %w", candidate.FullName(), err)
		}
		s.logger.DebugContext(ctx, "player created", "player_id", created.ID, "name", created.FullName())
		return created, true, nil
	}

	updated, err := s.repos.Players.Update(ctx, existing.Merge(candidate))
	if err != nil {
		return player.Player{}, false, fmt.Errorf("update player %d: %w", existing.ID, err)
	}
	s.logger.DebugContext(ctx, "player updated", "player_id", updated.ID, "name", updated.FullName())
	return updated, false, nil
}

// recordTransfer stores a move from the previous club when the row carries
// transfer data, the previous club is already known and the same transfer
// was not recorded before. Unknown previous clubs are never created.
func (s *SquadImportService) recordTransfer(
	ctx context.Context,
	resolver *EntityResolver,
	dates cellparse.DateParser,
	row sheet.Row,
	playerID, toClubID int64,
) (bool, error) {
	dateCell := row.Get(squadColTransferDate)
	previousClub := cellparse.String(row.Get(squadColPreviousClub))
	previousValue := cellparse.Number(row.Get(squadColPrevMarketValue))
	if !cellparse.Present(dateCell) && previousClub == "" && previousValue == nil {
		return false, nil
	}

	fromClubID, ok, err := resolver.FindClub(ctx, previousClub)
	if err != nil {
		return false, err
	}
	if !ok {
		s.logger.DebugContext(ctx, "transfer skipped, previous club unknown", "row", row.Number, "club", previousClub)
		return false, nil
	}

	date := dates.Parse(dateCell).Ptr()
	_, exists, err := s.repos.Transfers.FindTransfer(ctx, playerID, toClubID, date)
	if err != nil {
		return false, fmt.Errorf("find transfer: %w", err)
	}
	if exists {
		return false, nil
	}

	transferDate := s.now().UTC()
	if date != nil {
		transferDate = *date
	}
	if _, err := s.repos.Transfers.CreateTransfer(ctx, player.Transfer{
		PlayerID:    playerID,
		FromClubID:  fromClubID,
		ToClubID:    toClubID,
		Date:        transferDate,
		Fee:         cellparse.Text(row.Get(squadColTransferFee)),
		MarketValue: previousValue,
	}); err != nil {
		return false, fmt.Errorf("create transfer: %w", err)
	}
	return true, nil
}

func playerLastName(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}

func rowStrings(row sheet.Row) map[string]string {
	cells := row.Cells()
	out := make(map[string]string, len(cells))
	for header, v := range cells {
		out[header] = v.String()
	}
	return out
}
