package ledger

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError reports the first field of a candidate record that
// violates its constraint. Rejection happens before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NormalizeInstrument trims and upper-cases a symbol the way it is stored.
func NormalizeInstrument(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func validatePosition(p Position) error {
	if NormalizeInstrument(p.Instrument) == "" {
		return &ValidationError{Field: "instrument", Reason: "must not be empty"}
	}
	if !finite(p.EntryPrice) || p.EntryPrice <= 0 {
		return &ValidationError{Field: "entry_price", Reason: "must be a positive number"}
	}
	if !finite(p.Quantity) || p.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	}
	if !finite(p.Leverage) || p.Leverage < 1 {
		return &ValidationError{Field: "leverage", Reason: "must be at least 1"}
	}
	if !finite(p.OwnCapital) || p.OwnCapital < 0 {
		return &ValidationError{Field: "own_capital", Reason: "must not be negative"}
	}
	if !finite(p.Swap) || p.Swap < 0 {
		return &ValidationError{Field: "swap", Reason: "must not be negative"}
	}
	return nil
}

func validateAmount(amount float64) error {
	if !finite(amount) {
		return &ValidationError{Field: "amount", Reason: "must be a finite number"}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
