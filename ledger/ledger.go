package ledger

import (
	"errors"
	"time"
)

// Position is an open leveraged holding. ID and DateAdded are assigned by
// the store on insert; everything else comes from the user.
type Position struct {
	ID         string
	Instrument string
	EntryPrice float64
	Quantity   float64
	Leverage   float64
	OwnCapital float64
	Swap       float64
	DateAdded  time.Time
}

// BalanceSnapshot is one point of the account balance history. Snapshots
// are append-only: no updates, no deletes.
type BalanceSnapshot struct {
	Time    time.Time
	Balance float64
}

type Store interface {
	ListPositions() ([]Position, error)
	InsertPosition(Position) (Position, error)
	ListBalanceHistory() ([]BalanceSnapshot, error)
	FilterBalanceHistory(since time.Time) ([]BalanceSnapshot, error)
	LatestBalance() (float64, error)
	AppendBalance(amount float64) (BalanceSnapshot, error)
	Close() error
}

// ErrStorageUnavailable wraps failures to open or write the backing store.
var ErrStorageUnavailable = errors.New("ledger storage unavailable")
