package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

const metricsNamespace = "football_import"

// ImportMetrics holds the counters of one importer invocation. They are
// written once, at exit, in the node-exporter textfile format.
type ImportMetrics struct {
	registry *prometheus.Registry
	rows     *prometheus.GaugeVec
	outcomes *prometheus.GaugeVec
	duration *prometheus.GaugeVec
	lastRun  *prometheus.GaugeVec
}

func NewImportMetrics() *ImportMetrics {
	labels := []string{"command", "dry_run"}
	m := &ImportMetrics{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "rows_read",
			Help:      "Rows read from the source sheet in the last run.",
		}, labels),
		outcomes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "outcomes",
			Help:      "Per-outcome counts of the last run.",
		}, append(labels, "outcome")),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "duration_seconds",
			Help:      "Wall time of the last run.",
		}, labels),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}, labels),
	}
	m.registry.MustRegister(m.rows, m.outcomes, m.duration, m.lastRun)
	return m
}

func (m *ImportMetrics) ObserveFixtureImport(result usecase.FixtureImportResult, finishedAt time.Time) {
	labels := prometheus.Labels{"command": "fixtures", "dry_run": strconv.FormatBool(result.DryRun)}
	m.observe(labels, result.RowsRead, result.Duration, finishedAt, map[string]int{
		"events_inserted":       result.EventsInserted,
		"fixtures_created":      result.FixturesCreated,
		"fixtures_reused":       result.FixturesReused,
		"goalkeeper_pairs":      result.GoalkeeperPairs,
		"skipped":               result.Skipped,
		"failed":                result.Failed,
		"unresolved":            len(result.Unresolved),
		"ambiguous_dates":       len(result.AmbiguousDates),
		"resolver_cache_hits":   result.ResolverCache.Hits,
		"resolver_cache_misses": result.ResolverCache.Misses,
	})
}

func (m *ImportMetrics) ObserveSquadImport(result usecase.SquadImportResult, finishedAt time.Time) {
	labels := prometheus.Labels{"command": "squads", "dry_run": "false"}
	m.observe(labels, result.RowsRead, result.Duration, finishedAt, map[string]int{
		"players_created":       result.PlayersCreated,
		"players_updated":       result.PlayersUpdated,
		"memberships_created":   result.MembershipsCreated,
		"memberships_updated":   result.MembershipsUpdated,
		"transfers_created":     result.TransfersCreated,
		"failed":                len(result.Failed),
		"resolver_cache_hits":   result.ResolverCache.Hits,
		"resolver_cache_misses": result.ResolverCache.Misses,
	})
}

func (m *ImportMetrics) ObserveMinuteBackfill(result usecase.MinuteBackfillResult, duration time.Duration, finishedAt time.Time) {
	labels := prometheus.Labels{"command": "backfill-minutes", "dry_run": "false"}
	m.observe(labels, 0, duration, finishedAt, map[string]int{
		"missing_before": int(result.MissingBefore),
		"updated":        int(result.Updated),
		"missing_after":  int(result.MissingAfter),
	})
}

func (m *ImportMetrics) observe(labels prometheus.Labels, rows int, duration time.Duration, finishedAt time.Time, outcomes map[string]int) {
	m.rows.With(labels).Set(float64(rows))
	m.duration.With(labels).Set(duration.Seconds())
	m.lastRun.With(labels).Set(float64(finishedAt.Unix()))
	for outcome, count := range outcomes {
		outcomeLabels := prometheus.Labels{"outcome": outcome}
		for k, v := range labels {
			outcomeLabels[k] = v
		}
		m.outcomes.With(outcomeLabels).Set(float64(count))
	}
}

// WriteTextfile replaces path atomically with the current metric values.
func (m *ImportMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
