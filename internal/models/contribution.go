package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution represents a single accepted contribution event
type Contribution struct {
	ID            string          // unique identifier
	ContributorID string          // who contributed
	RawAmount     decimal.Decimal // contributed amount in raw value units (wei)
	RefValue      decimal.Decimal // converted value in 18-decimal reference units
	CreatedAt     time.Time       // timestamp
}
