package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/platform/cellparse"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/sheet"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func squadsCmd() *cobra.Command {
	var (
		file          string
		metricsFile   string
		failureReport string
		dateOrder     string
	)
	cmd := &cobra.Command{
		Use:   "squads [FILE]",
		Short: "Import a squad and player sheet",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := inputPath(file, args)
			if err != nil {
				return err
			}
			if err := requireFile(path); err != nil {
				return err
			}

			rt, err := newRuntime("squads")
			if err != nil {
				return err
			}
			defer rt.close()

			options := app.SquadImportOptions(rt.cfg.Import)
			if cmd.Flags().Changed("date-order") {
				order, err := cellparse.ParseOrder(dateOrder)
				if err != nil {
					return usageError(err)
				}
				options.DateOrder = order
			}
			if !cmd.Flags().Changed("metrics-file") {
				metricsFile = rt.cfg.Import.MetricsFile
			}
			if !cmd.Flags().Changed("failure-report") {
				failureReport = rt.cfg.Import.FailureReportPath
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
				svc := usecase.NewSquadImportService(store.Repos, options, logger)

				result, runErr := svc.Run(ctx, usecase.SquadImportInput{Source: path, RunID: runID}, reader.Rows())

				written, err := usecase.WriteFailureReport(failureReport, result.Failed)
				if err != nil {
					logger.Error("write failure report failed", "path", failureReport, "error", err)
				} else if written {
					logger.Warn("failed rows reported", "path", failureReport, "rows", len(result.Failed))
				}

				rt.metrics.ObserveSquadImport(result, time.Now())
				rt.writeMetrics(metricsFile)

				return runErr
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&file, "file", "", "Path to the .xlsx squad sheet")
	f.StringVar(&metricsFile, "metrics-file", "", "Write run counters in Prometheus textfile format")
	f.StringVar(&failureReport, "failure-report", "", "Path of the failed rows CSV report")
	f.StringVar(&dateOrder, "date-order", "", "Interpretation of ambiguous dates: dmy or mdy")

	return cmd
}
