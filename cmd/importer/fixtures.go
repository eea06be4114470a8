package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/platform/cellparse"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type fixturesFlags struct {
	leagueID           int64
	seasonID           int64
	file               string
	dryRun             bool
	metricsFile        string
	unresolvedReport   string
	dateOrder          string
	countGKPairs       bool
	createClubs        bool
	normalizeClubNames bool
}

func fixturesCmd() *cobra.Command {
	var flags fixturesFlags
	cmd := &cobra.Command{
		Use:   "fixtures [FILE]",
		Short: "Import a match-event sheet for one league season",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.leagueID <= 0 || flags.seasonID <= 0 {
				return usageError(errors.New("--league-id and --season-id are required and must be positive"))
			}
			path, err := inputPath(flags.file, args)
			if err != nil {
				return err
			}
			if err := requireFile(path); err != nil {
				return err
			}

			rt, err := newRuntime("fixtures")
			if err != nil {
				return err
			}
			defer rt.close()

			options := app.FixtureImportOptions(rt.cfg.Import)
			if err := applyFixtureOverrides(cmd, flags, &options); err != nil {
				return err
			}
			metricsFile := rt.cfg.Import.MetricsFile
			if cmd.Flags().Changed("metrics-file") {
				metricsFile = flags.metricsFile
			}
			unresolvedPath := rt.cfg.Import.UnresolvedReportPath
			if cmd.Flags().Changed("unresolved-report") {
				unresolvedPath = flags.unresolvedReport
			}

			ctx := cmd.Context()
			return rt.withStore(ctx, func(store *app.Store) error {
				reader, err := sheet.Open(path)
				if err != nil {
					return err
				}
				defer reader.Close()

				runID := id.NewRunID()
				logger := rt.logger.With("run_id", runID, "file", path)
				svc := usecase.NewFixtureImportService(store.Repos, options, logger)

				result, runErr := svc.Run(ctx, usecase.FixtureImportInput{
					LeagueID: flags.leagueID,
					SeasonID: flags.seasonID,
					Source:   path,
					DryRun:   flags.dryRun,
					RunID:    runID,
				}, reader.Rows())

				written, err := usecase.WriteUnresolvedReport(unresolvedPath, result.Unresolved)
				if err != nil {
					logger.Error("write unresolved report failed", "path", unresolvedPath, "error", err)
				} else if written {
					logger.Warn("unresolved teams reported", "path", unresolvedPath, "rows", len(result.Unresolved))
				}

				rt.metrics.ObserveFixtureImport(result, time.Now())
				rt.writeMetrics(metricsFile)

				return runErr
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&flags.leagueID, "league-id", 0, "League id the sheet belongs to (required)")
	f.Int64Var(&flags.seasonID, "season-id", 0, "Season id the sheet belongs to (required)")
	f.StringVar(&flags.file, "file", "", "Path to the .xlsx match-event sheet")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Resolve and count without writing anything")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "Write run counters in Prometheus textfile format")
	f.StringVar(&flags.unresolvedReport, "unresolved-report", "", "Path of the unresolved teams JSON report")
	f.StringVar(&flags.dateOrder, "date-order", "", "Interpretation of ambiguous dates: dmy or mdy")
	f.BoolVar(&flags.countGKPairs, "count-gk-pairs", false, "Count goalkeeper pairs as inserted events")
	f.BoolVar(&flags.createClubs, "create-clubs", true, "Create clubs that are not found by name")
	f.BoolVar(&flags.normalizeClubNames, "normalize-club-names", false, "Match clubs by normalised name")

	return cmd
}

func applyFixtureOverrides(cmd *cobra.Command, flags fixturesFlags, options *usecase.FixtureImportOptions) error {
	changed := cmd.Flags().Changed
	if changed("date-order") {
		order, err := cellparse.ParseOrder(flags.dateOrder)
		if err != nil {
			return usageError(err)
		}
		options.DateOrder = order
	}
	if changed("count-gk-pairs") {
		options.CountGoalkeeperPairsAsEvents = flags.countGKPairs
	}
	if changed("create-clubs") {
		options.CreateClubs = flags.createClubs
	}
	if changed("normalize-club-names") {
		options.NormalizeClubNames = flags.normalizeClubNames
	}
	return nil
}
