package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInstrument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AAPL", NormalizeInstrument(" aapl "))
	assert.Equal(t, "BTC-USD", NormalizeInstrument("btc-usd"))
	assert.Equal(t, "", NormalizeInstrument("   "))
}

func TestValidatePositionAccepts(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validatePosition(validPosition()))

	// Boundary values: leverage exactly 1, zero capital and swap.
	p := validPosition()
	p.Leverage = 1
	p.OwnCapital = 0
	p.Swap = 0
	assert.NoError(t, validatePosition(p))
}

func TestValidatePositionNonFinite(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := validPosition()
		p.EntryPrice = bad
		err := validatePosition(p)
		require.Error(t, err)

		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "entry_price", verr.Field)
	}
}

func TestValidationErrorMessageNamesField(t *testing.T) {
	t.Parallel()

	p := validPosition()
	p.Leverage = 0.9
	err := validatePosition(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leverage")
}
