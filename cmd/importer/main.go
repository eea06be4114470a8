// Command football-import loads match-event and squad spreadsheets into the
// football statistics database.
//
// Usage:
//
//	football-import fixtures --league-id 1 --season-id 3 matches.xlsx
//	football-import fixtures --league-id 1 --season-id 3 --file matches.xlsx --dry-run
//	football-import squads squads.xlsx
//	football-import backfill-minutes
//	football-import migrate up
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "football-import",
		Short:         "Import football statistics spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(fixturesCmd())
	root.AddCommand(squadsCmd())
	root.AddCommand(backfillMinutesCmd())
	root.AddCommand(migrateCmd())
	return root
}
