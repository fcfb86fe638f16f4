package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/folio/dashboard"
)

func newBalanceCmd(app *App) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the current account balance (masked unless --show)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			balance, err := store.LatestBalance()
			if err != nil {
				return err
			}

			if show {
				fmt.Printf("%.2f USD\n", balance)
			} else {
				fmt.Printf("%s USD\n", dashboard.MaskBalance(balance))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Show the balance instead of masking it")
	return cmd
}
