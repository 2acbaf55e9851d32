package treasury

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LogTreasury records releases as structured log lines. Physical settlement
// of the transfer is outside this service; the ledger only needs the release
// step to succeed or fail as a unit.
type LogTreasury struct{}

func (LogTreasury) Release(ctx context.Context, to string, amount decimal.Decimal) error {
	log.Info().
		Str("to", to).
		Str("amount", amount.String()).
		Msg("released held balance")
	return nil
}
