package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type FundsWithdrawn struct {
	EventID      string          `json:"event_id"`
	OwnerID      string          `json:"owner_id"`
	Amount       decimal.Decimal `json:"amount"`
	Contributors int             `json:"contributors"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
