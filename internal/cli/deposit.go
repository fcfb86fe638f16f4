package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDepositCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit AMOUNT",
		Short: "Deposit funds, appending a new balance snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number, got %q", args[0])
			}
			if amount < 0 {
				return fmt.Errorf("deposit amount must not be negative")
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.AppendBalance(amount)
			if err != nil {
				return err
			}

			fmt.Printf("deposited %.2f USD, new balance %.2f USD\n", amount, snap.Balance)
			return nil
		},
	}
}
