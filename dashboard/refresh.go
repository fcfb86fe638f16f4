package dashboard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/folio/ledger"
)

// DefaultInterval is the refresh period between read-render cycles.
const DefaultInterval = 30 * time.Second

// TickGateway is a Gateway whose per-tick cache can be dropped at the
// tick boundary.
type TickGateway interface {
	Gateway
	Invalidate()
}

// Refresher re-runs the read-render cycle on a fixed interval. Ticks run
// sequentially on one goroutine, so cycles never overlap; a slow cycle
// just delays the next tick.
type Refresher struct {
	Store    ledger.Store
	Gateway  TickGateway
	Window   Window
	Interval time.Duration
	Render   func(*View)
	Log      *logrus.Logger
}

// Run renders once immediately, then on every tick until ctx is done.
// Build failures are logged and skipped, never fatal for the loop.
func (r *Refresher) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	r.tick(ctx, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Gateway.Invalidate()
			r.tick(ctx, log)
		}
	}
}

func (r *Refresher) tick(ctx context.Context, log *logrus.Logger) {
	start := time.Now()

	view, err := Build(ctx, r.Store, r.Gateway, r.Window)
	if err != nil {
		log.WithError(err).Error("refresh tick failed")
		return
	}

	log.WithFields(logrus.Fields{
		"positions": len(view.Positions),
		"snapshots": len(view.History),
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Debug("refresh tick")

	if r.Render != nil {
		r.Render(view)
	}
}
