// Package money renders raw amounts for display. The cart engine stores
// numeric prices and a currency code only; formatted strings are produced
// here at the presentation boundary and are never authoritative state.
package money

import "github.com/shopspring/decimal"

const defaultCurrency = "USD"

// Format renders an amount with exactly two decimals and the currency code,
// e.g. Format(129, "USD") -> "129.00 USD". An empty currency falls back to
// USD. Decimal rounding avoids the float artifacts of fmt.Sprintf on values
// like 0.1+0.2.
func Format(amount float64, currency string) string {
	if currency == "" {
		currency = defaultCurrency
	}
	return decimal.NewFromFloat(amount).StringFixed(2) + " " + currency
}
