package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

func TestImportMetrics_WriteTextfile(t *testing.T) {
	metrics := NewImportMetrics()
	finishedAt := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)

	metrics.ObserveFixtureImport(usecase.FixtureImportResult{
		DryRun:          true,
		RowsRead:        4,
		EventsInserted:  2,
		FixturesCreated: 1,
		GoalkeeperPairs: 1,
		Unresolved:      []usecase.UnresolvedRow{{Row: 9}},
		ResolverCache:   usecase.ResolverCacheStats{Hits: 6, Misses: 5, Entries: 5},
		Duration:        1500 * time.Millisecond,
	}, finishedAt)

	path := filepath.Join(t.TempDir(), "football_import.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `football_import_rows_read{command="fixtures",dry_run="true"} 4`)
	assert.Contains(t, body, `football_import_outcomes{command="fixtures",dry_run="true",outcome="events_inserted"} 2`)
	assert.Contains(t, body, `football_import_outcomes{command="fixtures",dry_run="true",outcome="unresolved"} 1`)
	assert.Contains(t, body, `football_import_outcomes{command="fixtures",dry_run="true",outcome="resolver_cache_hits"} 6`)
	assert.Contains(t, body, `football_import_duration_seconds{command="fixtures",dry_run="true"} 1.5`)
	assert.True(t, strings.Contains(body, "football_import_last_run_timestamp_seconds"), "last run gauge missing")
}

func TestImportMetrics_SquadAndBackfill(t *testing.T) {
	metrics := NewImportMetrics()
	now := time.Now()

	metrics.ObserveSquadImport(usecase.SquadImportResult{RowsRead: 3, PlayersCreated: 2, Failed: []usecase.FailedRow{{Row: 2}}}, now)
	metrics.ObserveMinuteBackfill(usecase.MinuteBackfillResult{MissingBefore: 5, Updated: 5}, time.Second, now)

	path := filepath.Join(t.TempDir(), "football_import.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `football_import_outcomes{command="squads",dry_run="false",outcome="players_created"} 2`)
	assert.Contains(t, body, `football_import_outcomes{command="squads",dry_run="false",outcome="failed"} 1`)
	assert.Contains(t, body, `football_import_outcomes{command="backfill-minutes",dry_run="false",outcome="updated"} 5`)
}
