package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/folio/ledger"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		entry    float64
		quantity float64
		leverage float64
		capital  float64
		swap     float64
	)

	cmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a position (the symbol is validated against the quote source first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := ledger.NormalizeInstrument(args[0])

			if !app.quoteClient().Exists(cmd.Context(), symbol) {
				return fmt.Errorf("symbol %q not found", symbol)
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			pos, err := store.InsertPosition(ledger.Position{
				Instrument: symbol,
				EntryPrice: entry,
				Quantity:   quantity,
				Leverage:   leverage,
				OwnCapital: capital,
				Swap:       swap,
			})
			var verr *ledger.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("rejected: %s", verr)
			}
			if err != nil {
				return err
			}

			fmt.Printf("added %s: entry %.2f, qty %.2f, leverage %.1fx, capital %.2f (id %s)\n",
				pos.Instrument, pos.EntryPrice, pos.Quantity, pos.Leverage, pos.OwnCapital, pos.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&entry, "entry", 0, "Entry price")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Position size")
	cmd.Flags().Float64Var(&leverage, "leverage", 1, "Leverage multiplier (>= 1)")
	cmd.Flags().Float64Var(&capital, "capital", 0, "Own capital allocated")
	cmd.Flags().Float64Var(&swap, "swap", 0, "Swap / carrying cost")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}
