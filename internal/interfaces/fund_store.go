package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rocknwa/FundMe/internal/models"
)

type FundStore interface {
	// AddContribution records an accepted contribution atomically: grows the
	// contributor's cumulative amount, appends to the contributor sequence and
	// increases the held balance.
	AddContribution(ctx context.Context, contributorID string, rawAmount decimal.Decimal) error
	AmountContributed(contributorID string) (decimal.Decimal, error)
	Contributors() ([]string, error)
	TotalBalance() (decimal.Decimal, error)
	// Reset clears all records, the sequence and the balance, returning the
	// prior state so a failed release can be restored.
	Reset(ctx context.Context) (models.LedgerSnapshot, error)
	Restore(ctx context.Context, snap models.LedgerSnapshot) error
}
