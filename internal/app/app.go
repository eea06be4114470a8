package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

// Store is the persistence port built once per process. Close releases the
// connection pool.
type Store struct {
	DB    *sqlx.DB
	Repos usecase.ImportRepositories
}

// OpenStore connects to Postgres, verifies the import tables exist and wires
// the repositories. A missing table yields an error matching
// usecase.ErrSchemaMissing.
func OpenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dbName := dbNameFromURL(cfg.DBURL)
	db, err := otelsqlx.Open("postgres", DBURL(cfg),
		otelsql.WithDBName(dbName),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := postgres.CheckSchema(ctx, db, postgres.RequiredTables); err != nil {
		_ = db.Close()
		if dberr.IsMissingRelation(err) {
			return nil, fmt.Errorf("%w: %v", usecase.ErrSchemaMissing, err)
		}
		return nil, fmt.Errorf("check schema: %w", err)
	}

	logger.Info("postgres connected", "db_name", dbName, "max_open_conns", cfg.DBMaxOpenConns)

	return &Store{DB: db, Repos: NewRepositories(db)}, nil
}

func NewRepositories(db *sqlx.DB) usecase.ImportRepositories {
	squads := postgres.NewSquadRepository(db)
	return usecase.ImportRepositories{
		Nations:    postgres.NewNationRepository(db),
		Seasons:    postgres.NewSeasonRepository(db),
		Leagues:    postgres.NewLeagueRepository(db),
		Clubs:      postgres.NewClubRepository(db),
		MatchWeeks: postgres.NewMatchWeekRepository(db),
		Fixtures:   postgres.NewFixtureRepository(db),
		Events:     postgres.NewMatchEventRepository(db),
		GKPerfs:    postgres.NewGKPerfRepository(db),
		Players:    postgres.NewPlayerRepository(db),
		Squads:     squads,
		Transfers:  squads,
	}
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}

func FixtureImportOptions(cfg config.ImportConfig) usecase.FixtureImportOptions {
	return usecase.FixtureImportOptions{
		DateOrder:                    cfg.DateOrder,
		CountGoalkeeperPairsAsEvents: cfg.CountGoalkeeperPairsAsEvents,
		CreateClubs:                  cfg.CreateClubs,
		NormalizeClubNames:           cfg.NormalizeClubNames,
		ProgressEvery:                cfg.ProgressEvery,
	}
}

func SquadImportOptions(cfg config.ImportConfig) usecase.SquadImportOptions {
	return usecase.SquadImportOptions{
		DateOrder:          cfg.DateOrder,
		NormalizeClubNames: cfg.NormalizeClubNames,
		ProgressEvery:      cfg.ProgressEvery,
	}
}
