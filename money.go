package deliveries

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when no currency is configured.
const DefaultCurrency = money.ILS

// Currency formats monetary values: symbol prefix, fixed two decimals.
type Currency struct {
	symbol   string
	fraction int32
}

// NewCurrency resolves an ISO currency code against the go-money currency
// table. Unknown or empty codes fall back to the default currency.
func NewCurrency(code string) Currency {
	c := money.GetCurrency(code)
	if c == nil {
		c = money.GetCurrency(DefaultCurrency)
	}
	return Currency{symbol: c.Grapheme, fraction: int32(c.Fraction)}
}

// Symbol returns the currency grapheme, e.g. "₪".
func (c Currency) Symbol() string { return c.symbol }

// Format renders x as the currency symbol followed by the value with
// exactly the currency's fraction digits. Non-finite values render as zero,
// they only ever come from malformed imports.
func (c Currency) Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	return c.symbol + decimal.NewFromFloat(x).StringFixed(c.fraction)
}
