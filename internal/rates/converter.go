package rates

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rocknwa/FundMe/internal/oracle"
)

// refDecimals is the fixed-point precision of the reference currency.
const refDecimals = 18

// NormalizedRate reads the feed's latest answer and rescales it to the
// canonical 18-decimal fixed-point representation, accounting for the feed's
// own declared precision. A non-positive answer fails with oracle.ErrBadAnswer.
func NormalizedRate(ctx context.Context, feed oracle.PriceFeed) (decimal.Decimal, error) {
	round, err := feed.Latest(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", oracle.ErrBadAnswer, err)
	}

	if round.Answer == nil || round.Answer.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: answer %v at round %d", oracle.ErrBadAnswer, round.Answer, round.RoundID)
	}

	return decimal.NewFromBigInt(round.Answer, refDecimals-int32(feed.Decimals())), nil
}

// Convert returns rawAmount valued in 18-decimal reference units at the
// feed's latest rate: rawAmount * NormalizedRate / 10^18. Arithmetic is exact,
// no side effects, deterministic given feed state at call time.
func Convert(ctx context.Context, rawAmount decimal.Decimal, feed oracle.PriceFeed) (decimal.Decimal, error) {
	rate, err := NormalizedRate(ctx, feed)
	if err != nil {
		return decimal.Zero, err
	}

	return rawAmount.Mul(rate).Shift(-refDecimals), nil
}
