package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/folio/dashboard"
	"github.com/rustyeddy/folio/quotes"
)

func newPositionsCmd(app *App) *cobra.Command {
	var distribution bool

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "List positions with live prices and unrealized profit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			gw := quotes.NewCache(app.quoteClient())
			view, err := dashboard.Build(cmd.Context(), store, gw, dashboard.Window1d)
			if err != nil {
				return err
			}

			renderPositions(os.Stdout, view.Positions)
			if distribution {
				renderDistribution(os.Stdout, view.Distribution)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&distribution, "distribution", false, "Also print capital per instrument")
	return cmd
}
