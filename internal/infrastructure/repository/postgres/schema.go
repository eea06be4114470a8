package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/internal/platform/dberr"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

// RequiredTables are the tables the import adapters read and write.
var RequiredTables = []string{
	"nations",
	"seasons",
	"leagues",
	"league_seasons",
	"clubs",
	"club_seasons",
	"match_weeks",
	"fixtures",
	"match_events",
	"gk_perfs",
	"players",
	"squad_memberships",
	"transfers",
}

// CheckSchema reports the required tables absent from the public schema.
// The returned error is marked as dberr.ErrMissingRelation.
func CheckSchema(ctx context.Context, db *sqlx.DB, tables []string) error {
	names := make([]any, 0, len(tables))
	for _, table := range tables {
		names = append(names, table)
	}

	query, args, err := qb.Select("table_name").From("information_schema.tables").
		Where(
			qb.Eq("table_schema", "public"),
			qb.In("table_name", names),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select existing tables query: %w", err)
	}

	var existing []string
	if err := db.SelectContext(ctx, &existing, query, args...); err != nil {
		return fmt.Errorf("select existing tables: %w", classify(err))
	}

	missing := MissingTables(tables, existing)
	if len(missing) == 0 {
		return nil
	}
	return crerr.Wrapf(dberr.ErrMissingRelation, "missing tables: %s", strings.Join(missing, ", "))
}

func MissingTables(required, existing []string) []string {
	var missing []string
	for _, table := range required {
		if !slices.Contains(existing, table) {
			missing = append(missing, table)
		}
	}
	return missing
}
