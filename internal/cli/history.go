package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/folio/dashboard"
	"github.com/rustyeddy/folio/valuation"
)

func newHistoryCmd(app *App) *cobra.Command {
	var windowFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the balance history for a time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := dashboard.ParseWindow(windowFlag)
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			history, err := store.FilterBalanceHistory(window.Since(time.Now().UTC()))
			if err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Printf("no balance records in the last %s\n", window)
				return nil
			}

			for _, snap := range history {
				fmt.Printf("%s  %.2f\n", snap.Time.Format(time.RFC3339), snap.Balance)
			}
			abs, pct := valuation.Change(history[len(history)-1].Balance, history[0].Balance)
			fmt.Printf("change: %+.2f (%+.2f%%)\n", abs, pct)
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "1d", "History window: 1h|12h|1d|1w|1m|6m|1y")
	return cmd
}
