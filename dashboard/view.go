// Package dashboard builds the read-render view model and drives the
// periodic refresh. It owns no state: every Build call reads a fresh
// snapshot from the ledger and the quote gateway.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/folio/ledger"
	"github.com/rustyeddy/folio/quotes"
	"github.com/rustyeddy/folio/valuation"
)

// Gateway is the price side of one refresh cycle.
type Gateway interface {
	CurrentPrices(ctx context.Context, symbols []string) map[string]quotes.Quote
}

// PositionRow is a position joined with its live valuation. CurrentPrice
// and Profit are nil when the quote was unavailable; the row still renders.
type PositionRow struct {
	ledger.Position
	CurrentPrice *float64
	Profit       *float64
}

// View is everything one refresh tick renders.
type View struct {
	GeneratedAt  time.Time
	Balance      float64
	Positions    []PositionRow
	Distribution map[string]float64
	Window       Window
	History      []ledger.BalanceSnapshot
}

// Build assembles a view from the current store contents and a best-effort
// quote batch. A flaky quote degrades one row; only storage errors fail
// the build.
func Build(ctx context.Context, store ledger.Store, gw Gateway, window Window) (*View, error) {
	now := time.Now().UTC()

	positions, err := store.ListPositions()
	if err != nil {
		return nil, fmt.Errorf("build view: %w", err)
	}
	balance, err := store.LatestBalance()
	if err != nil {
		return nil, fmt.Errorf("build view: %w", err)
	}
	history, err := store.FilterBalanceHistory(window.Since(now))
	if err != nil {
		return nil, fmt.Errorf("build view: %w", err)
	}

	symbols := make([]string, 0, len(positions))
	for _, p := range positions {
		symbols = append(symbols, p.Instrument)
	}
	prices := gw.CurrentPrices(ctx, symbols)

	rows := make([]PositionRow, 0, len(positions))
	for _, p := range positions {
		row := PositionRow{Position: p}
		if q, ok := prices[p.Instrument]; ok && q.OK {
			price := q.Price
			row.CurrentPrice = &price
			row.Profit = valuation.Profit(p.EntryPrice, &price, p.Quantity, p.Leverage)
		}
		rows = append(rows, row)
	}

	return &View{
		GeneratedAt:  now,
		Balance:      balance,
		Positions:    rows,
		Distribution: valuation.AggregateByInstrument(positions),
		Window:       window,
		History:      history,
	}, nil
}

// BalanceDelta returns the change across the rendered history window.
func (v *View) BalanceDelta() (abs, pct float64) {
	if len(v.History) < 2 {
		return 0, 0
	}
	return valuation.Change(v.History[len(v.History)-1].Balance, v.History[0].Balance)
}

// MaskBalance renders a balance hidden behind stars, one per integer
// digit, the way the balance toggle hides it.
func MaskBalance(balance float64) string {
	return strings.Repeat("*", len(fmt.Sprintf("%d", int(balance))))
}
