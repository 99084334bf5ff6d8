package ledger

import "github.com/shopspring/decimal"

// SatoshiPerBTC is the unit scale of the tracked asset.
const SatoshiPerBTC int64 = 100_000_000

// Quote is a price-per-unit observation from the external feed. The zero
// value is "unavailable": callers must omit the fiat figure rather than
// render it as zero.
type Quote struct {
	price     decimal.Decimal
	available bool
}

// NewQuote wraps a fetched price.
func NewQuote(pricePerUnit float64) Quote {
	return Quote{price: decimal.NewFromFloat(pricePerUnit), available: true}
}

// NoQuote is the unavailable quote.
func NoQuote() Quote {
	return Quote{}
}

func (q Quote) Available() bool {
	return q.available
}

// Price returns the price per unit; valid only when Available.
func (q Quote) Price() decimal.Decimal {
	return q.price
}

// ToUnit converts base units into whole units of the asset.
func ToUnit(baseUnits, unitScale int64) decimal.Decimal {
	return decimal.NewFromInt(baseUnits).Div(decimal.NewFromInt(unitScale))
}

// ToFiat values a base-unit balance at the quoted price. No rounding is
// applied; formatting is the caller's concern. Returns false when the
// quote is unavailable.
func ToFiat(baseUnits, unitScale int64, q Quote) (decimal.Decimal, bool) {
	if !q.available {
		return decimal.Decimal{}, false
	}
	return ToUnit(baseUnits, unitScale).Mul(q.price), true
}
