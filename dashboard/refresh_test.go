package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/folio/ledger"
	"github.com/rustyeddy/folio/quotes"
)

func TestRefresherRendersEachTick(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		positions: []ledger.Position{
			{ID: "1", Instrument: "AAPL", EntryPrice: 100, Quantity: 1, Leverage: 1, OwnCapital: 100},
		},
	}
	gw := &fakeGateway{quotes: map[string]quotes.Quote{"AAPL": {Price: 105, OK: true}}}

	rendered := make(chan *View, 8)
	r := &Refresher{
		Store:    store,
		Gateway:  gw,
		Window:   Window1d,
		Interval: 10 * time.Millisecond,
		Render:   func(v *View) { rendered <- v },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// The first render happens immediately, then once per tick.
	var views []*View
	for len(views) < 3 {
		select {
		case v := <-rendered:
			views = append(views, v)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for renders")
		}
	}
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)

	for _, v := range views {
		require.Len(t, v.Positions, 1)
		require.NotNil(t, v.Positions[0].Profit)
		assert.InDelta(t, 5, *v.Positions[0].Profit, 1e-9)
	}
}

func TestRefresherSurvivesBuildFailure(t *testing.T) {
	t.Parallel()

	r := &Refresher{
		Store:    &fakeStore{failList: true},
		Gateway:  &fakeGateway{},
		Window:   Window1d,
		Interval: 10 * time.Millisecond,
		Render:   func(v *View) { t.Error("render must not run on a failed build") },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
