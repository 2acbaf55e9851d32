package models

import "github.com/shopspring/decimal"

// LedgerSnapshot captures the full bookkeeping state of the fund at a point
// in time. Withdraw uses it to restore the books if the release step fails.
type LedgerSnapshot struct {
	Records  map[string]decimal.Decimal // cumulative raw amount per contributor
	Sequence []string                   // contributor id per accepted contribution, in order
	Balance  decimal.Decimal            // total held balance in raw units
}
