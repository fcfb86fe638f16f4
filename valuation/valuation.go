// Package valuation holds the pure profit and delta arithmetic. Nothing
// here touches storage or the network.
package valuation

import "github.com/rustyeddy/folio/ledger"

// Profit returns the unrealized profit of a leveraged position, or nil
// when no current price is available. No rounding; display formatting is
// the caller's concern.
func Profit(entryPrice float64, currentPrice *float64, quantity, leverage float64) *float64 {
	if currentPrice == nil {
		return nil
	}
	p := (*currentPrice - entryPrice) * quantity * leverage
	return &p
}

// Change returns the absolute and percentage delta from previous to
// current. A zero previous value yields 0%.
func Change(current, previous float64) (deltaAbs, deltaPct float64) {
	deltaAbs = current - previous
	if previous == 0 {
		return deltaAbs, 0
	}
	return deltaAbs, deltaAbs / previous * 100
}

// AggregateByInstrument sums own capital per instrument. Map order is
// unspecified; it feeds the capital distribution display only.
func AggregateByInstrument(positions []ledger.Position) map[string]float64 {
	out := make(map[string]float64, len(positions))
	for _, p := range positions {
		out[p.Instrument] += p.OwnCapital
	}
	return out
}
