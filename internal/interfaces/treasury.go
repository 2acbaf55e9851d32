package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// Treasury performs the single outbound value transfer of a withdrawal.
type Treasury interface {
	Release(ctx context.Context, to string, amount decimal.Decimal) error
}
