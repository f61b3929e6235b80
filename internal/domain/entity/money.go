package entity

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals render as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
