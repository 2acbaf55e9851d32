package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContributionAccepted struct {
	EventID       string          `json:"event_id"`
	ContributorID string          `json:"contributor_id"`
	RawAmount     decimal.Decimal `json:"raw_amount"`
	RefValue      decimal.Decimal `json:"ref_value"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
