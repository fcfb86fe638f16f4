package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/folio/ledger"
	"github.com/rustyeddy/folio/quotes"
)

// fakeStore is an in-memory ledger.Store for view tests.
type fakeStore struct {
	positions []ledger.Position
	history   []ledger.BalanceSnapshot
	failList  bool
}

func (f *fakeStore) ListPositions() ([]ledger.Position, error) {
	if f.failList {
		return nil, ledger.ErrStorageUnavailable
	}
	return f.positions, nil
}

func (f *fakeStore) InsertPosition(p ledger.Position) (ledger.Position, error) {
	f.positions = append(f.positions, p)
	return p, nil
}

func (f *fakeStore) ListBalanceHistory() ([]ledger.BalanceSnapshot, error) {
	return f.history, nil
}

func (f *fakeStore) FilterBalanceHistory(since time.Time) ([]ledger.BalanceSnapshot, error) {
	var out []ledger.BalanceSnapshot
	for _, b := range f.history {
		if !b.Time.Before(since) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) LatestBalance() (float64, error) {
	if len(f.history) > 0 {
		return f.history[len(f.history)-1].Balance, nil
	}
	var sum float64
	for _, p := range f.positions {
		sum += p.OwnCapital
	}
	return sum, nil
}

func (f *fakeStore) AppendBalance(amount float64) (ledger.BalanceSnapshot, error) {
	current, _ := f.LatestBalance()
	snap := ledger.BalanceSnapshot{Time: time.Now().UTC(), Balance: current + amount}
	f.history = append(f.history, snap)
	return snap, nil
}

func (f *fakeStore) Close() error { return nil }

// fakeGateway serves canned quotes and records the requested symbols.
type fakeGateway struct {
	quotes    map[string]quotes.Quote
	requested []string
}

func (f *fakeGateway) CurrentPrices(ctx context.Context, symbols []string) map[string]quotes.Quote {
	f.requested = symbols
	return f.quotes
}

func (f *fakeGateway) Invalidate() {}

func TestBuildJoinsPositionsWithQuotes(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		positions: []ledger.Position{
			{ID: "1", Instrument: "AAPL", EntryPrice: 100, Quantity: 2, Leverage: 5, OwnCapital: 200},
			{ID: "2", Instrument: "TSLA", EntryPrice: 250, Quantity: 1, Leverage: 2, OwnCapital: 300},
		},
	}
	gw := &fakeGateway{quotes: map[string]quotes.Quote{
		"AAPL": {Price: 110, OK: true},
		"TSLA": {}, // unavailable
	}}

	view, err := Build(context.Background(), store, gw, Window1d)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"AAPL", "TSLA"}, gw.requested)
	require.Len(t, view.Positions, 2)

	require.NotNil(t, view.Positions[0].CurrentPrice)
	assert.InDelta(t, 110, *view.Positions[0].CurrentPrice, 1e-9)
	require.NotNil(t, view.Positions[0].Profit)
	assert.InDelta(t, 100, *view.Positions[0].Profit, 1e-9)

	// The unavailable quote degrades one row, not the whole view.
	assert.Nil(t, view.Positions[1].CurrentPrice)
	assert.Nil(t, view.Positions[1].Profit)

	assert.InDelta(t, 500, view.Balance, 1e-9)
	assert.InDelta(t, 200, view.Distribution["AAPL"], 1e-9)
	assert.InDelta(t, 300, view.Distribution["TSLA"], 1e-9)
}

func TestBuildEmptyStore(t *testing.T) {
	t.Parallel()

	view, err := Build(context.Background(), &fakeStore{}, &fakeGateway{}, Window1d)
	require.NoError(t, err)

	assert.Empty(t, view.Positions)
	assert.Empty(t, view.History)
	assert.Zero(t, view.Balance)
}

func TestBuildWindowsHistory(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	store := &fakeStore{history: []ledger.BalanceSnapshot{
		{Time: now.Add(-48 * time.Hour), Balance: 100},
		{Time: now.Add(-2 * time.Hour), Balance: 150},
		{Time: now.Add(-time.Minute), Balance: 180},
	}}

	view, err := Build(context.Background(), store, &fakeGateway{}, Window1d)
	require.NoError(t, err)
	require.Len(t, view.History, 2)
	assert.InDelta(t, 150, view.History[0].Balance, 1e-9)

	abs, pct := view.BalanceDelta()
	assert.InDelta(t, 30, abs, 1e-9)
	assert.InDelta(t, 20, pct, 1e-9)
}

func TestBuildStorageError(t *testing.T) {
	t.Parallel()

	_, err := Build(context.Background(), &fakeStore{failList: true}, &fakeGateway{}, Window1d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ledger.ErrStorageUnavailable))
}

func TestBalanceDeltaShortHistory(t *testing.T) {
	t.Parallel()

	v := &View{History: []ledger.BalanceSnapshot{{Balance: 100}}}
	abs, pct := v.BalanceDelta()
	assert.Zero(t, abs)
	assert.Zero(t, pct)
}

func TestMaskBalance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****", MaskBalance(1234.56))
	assert.Equal(t, "*", MaskBalance(0))
	assert.Equal(t, "***", MaskBalance(999.99))
}
