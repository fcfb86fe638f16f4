package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio — local dashboard for leveraged positions and account balance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&app.flagConfig, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&app.flagDB, "db", "", "SQLite ledger database (default ./portfolio.db)")
	cmd.PersistentFlags().StringVar(&app.flagQuoteURL, "quote-url", "", "Quote API base URL (default Yahoo Finance)")
	cmd.PersistentFlags().StringVar(&app.flagLogLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}

	// Subcommands
	cmd.AddCommand(
		newAddCmd(app),
		newDepositCmd(app),
		newPositionsCmd(app),
		newBalanceCmd(app),
		newHistoryCmd(app),
		newWatchCmd(app),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("folio (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
