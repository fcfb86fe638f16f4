package ledger

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the durable ledger store. It is single-writer: writes are
// serialized behind mu so a balance append reads and extends the history
// atomically.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrStorageUnavailable, err)
	}

	return &SQLite{db: db}, nil
}

// InsertPosition validates the candidate, assigns ID and DateAdded and
// persists it. A rejected candidate leaves the store untouched.
func (s *SQLite) InsertPosition(p Position) (Position, error) {
	if err := validatePosition(p); err != nil {
		return Position{}, err
	}

	p.ID = newID()
	p.Instrument = NormalizeInstrument(p.Instrument)
	p.DateAdded = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO positions
		(id, instrument, entry_price, quantity, leverage, own_capital, swap, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Instrument, p.EntryPrice, p.Quantity, p.Leverage, p.OwnCapital, p.Swap, p.DateAdded,
	)
	if err != nil {
		return Position{}, fmt.Errorf("%w: insert position: %v", ErrStorageUnavailable, err)
	}
	return p, nil
}

// ListPositions returns all positions oldest-first. ULIDs sort by
// creation time, so ordering by id is insertion order.
func (s *SQLite) ListPositions() ([]Position, error) {
	rows, err := s.db.Query(`
		SELECT id, instrument, entry_price, quantity, leverage, own_capital, swap, date_added
		FROM positions
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list positions: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(
			&p.ID,
			&p.Instrument,
			&p.EntryPrice,
			&p.Quantity,
			&p.Leverage,
			&p.OwnCapital,
			&p.Swap,
			&p.DateAdded,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) ListBalanceHistory() ([]BalanceSnapshot, error) {
	return s.balanceHistory(`
		SELECT time, balance FROM balance_history
		ORDER BY time ASC, rowid ASC`)
}

// FilterBalanceHistory returns snapshots with time >= since, oldest-first.
// An empty result is not an error.
func (s *SQLite) FilterBalanceHistory(since time.Time) ([]BalanceSnapshot, error) {
	return s.balanceHistory(`
		SELECT time, balance FROM balance_history
		WHERE time >= ?
		ORDER BY time ASC, rowid ASC`, since)
}

func (s *SQLite) balanceHistory(query string, args ...any) ([]BalanceSnapshot, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list balance history: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []BalanceSnapshot
	for rows.Next() {
		var b BalanceSnapshot
		if err := rows.Scan(&b.Time, &b.Balance); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestBalance returns the balance of the most recent snapshot. With no
// history it falls back to the sum of own capital over all positions,
// recomputed on every call since positions may have changed.
func (s *SQLite) LatestBalance() (float64, error) {
	return s.latestBalance()
}

func (s *SQLite) latestBalance() (float64, error) {
	var balance float64
	err := s.db.QueryRow(`
		SELECT balance FROM balance_history
		ORDER BY time DESC, rowid DESC
		LIMIT 1`).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("%w: latest balance: %v", ErrStorageUnavailable, err)
	}

	err = s.db.QueryRow(`SELECT COALESCE(SUM(own_capital), 0) FROM positions`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("%w: sum own capital: %v", ErrStorageUnavailable, err)
	}
	return balance, nil
}

// AppendBalance persists a new snapshot at latestBalance()+amount. A
// negative amount is a withdrawal; NaN and infinities are rejected.
func (s *SQLite) AppendBalance(amount float64) (BalanceSnapshot, error) {
	if err := validateAmount(amount); err != nil {
		return BalanceSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.latestBalance()
	if err != nil {
		return BalanceSnapshot{}, err
	}

	snap := BalanceSnapshot{
		Time:    time.Now().UTC(),
		Balance: current + amount,
	}
	_, err = s.db.Exec(`INSERT INTO balance_history (time, balance) VALUES (?, ?)`,
		snap.Time, snap.Balance)
	if err != nil {
		return BalanceSnapshot{}, fmt.Errorf("%w: append balance: %v", ErrStorageUnavailable, err)
	}
	return snap, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
