package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/folio/dashboard"
	"github.com/rustyeddy/folio/quotes"
)

func newWatchCmd(app *App) *cobra.Command {
	var (
		windowFlag string
		interval   time.Duration
		show       bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the dashboard and refresh it on a fixed interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := dashboard.ParseWindow(windowFlag)
			if err != nil {
				return err
			}
			if interval == 0 {
				if interval, err = app.cfg.RefreshInterval(); err != nil {
					return err
				}
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := &dashboard.Refresher{
				Store:    store,
				Gateway:  quotes.NewCache(app.quoteClient()),
				Window:   window,
				Interval: interval,
				Log:      app.log,
				Render: func(v *dashboard.View) {
					// Clear screen and repaint.
					fmt.Print("\033[2J\033[H")
					renderView(os.Stdout, v, show)
				},
			}

			if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "1d", "History window: 1h|12h|1d|1w|1m|6m|1y")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Refresh interval (default from config, 30s)")
	cmd.Flags().BoolVar(&show, "show", false, "Show the balance instead of masking it")
	return cmd
}
