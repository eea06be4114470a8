package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func backfillMinutesCmd() *cobra.Command {
	var metricsFile string
	cmd := &cobra.Command{
		Use:   "backfill-minutes",
		Short: "Fill match_events.minute_text from minute where it is missing",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime("backfill-minutes")
			if err != nil {
				return err
			}
			defer rt.close()

			if !cmd.Flags().Changed("metrics-file") {
				metricsFile = rt.cfg.Import.MetricsFile
			}

			ctx := cmd.Context()
			return rt.withStore(ctx, func(store *app.Store) error {
				started := time.Now()
				result, err := usecase.NewMinuteBackfillService(store.Repos.Events, rt.logger).Run(ctx)
				if err != nil {
					return err
				}
				rt.metrics.ObserveMinuteBackfill(result, time.Since(started), time.Now())
				rt.writeMetrics(metricsFile)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run counters in Prometheus textfile format")
	return cmd
}
