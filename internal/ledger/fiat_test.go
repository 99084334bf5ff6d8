package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFiat(t *testing.T) {
	// 0.00500000 BTC at 50000.0 per BTC is exactly 250.
	fiat, ok := ToFiat(500000, SatoshiPerBTC, NewQuote(50000.0))
	require.True(t, ok)
	assert.True(t, fiat.Equal(decimal.NewFromInt(250)), "got %s", fiat)
}

func TestToFiat_Unavailable(t *testing.T) {
	// An absent quote must surface as unavailable, never as zero.
	_, ok := ToFiat(500000, SatoshiPerBTC, NoQuote())
	assert.False(t, ok)
	assert.False(t, NoQuote().Available())
}

func TestToFiat_ZeroBalance(t *testing.T) {
	fiat, ok := ToFiat(0, SatoshiPerBTC, NewQuote(50000.0))
	require.True(t, ok)
	assert.True(t, fiat.IsZero())
}

func TestToUnit(t *testing.T) {
	assert.Equal(t, "0.00500000", ToUnit(500000, SatoshiPerBTC).StringFixed(8))
	assert.Equal(t, "1.00000000", ToUnit(SatoshiPerBTC, SatoshiPerBTC).StringFixed(8))
	assert.Equal(t, "0.00000000", ToUnit(0, SatoshiPerBTC).StringFixed(8))
}

func TestQuote(t *testing.T) {
	q := NewQuote(64123.5)
	require.True(t, q.Available())
	assert.True(t, q.Price().Equal(decimal.NewFromFloat(64123.5)))
}
