package rates

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rocknwa/FundMe/internal/oracle"
)

type failingFeed struct{}

func (failingFeed) Latest(ctx context.Context) (oracle.RoundData, error) {
	return oracle.RoundData{}, errors.New("feed unreachable")
}

func (failingFeed) Decimals() uint8 { return 8 }

func TestNormalizedRate(t *testing.T) {
	ctx := context.Background()

	t.Run("rescales 8-decimal answer to 18 decimals", func(t *testing.T) {
		// $2000 per unit reported at 8 decimals
		feed := oracle.NewMockFeed(8, big.NewInt(200_000_000_000))

		rate, err := NormalizedRate(ctx, feed)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.New(2000, 18)), "got %s", rate)
	})

	t.Run("18-decimal answer passes through unscaled", func(t *testing.T) {
		answer, ok := new(big.Int).SetString("2000000000000000000000", 10)
		require.True(t, ok)
		feed := oracle.NewMockFeed(18, answer)

		rate, err := NormalizedRate(ctx, feed)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.New(2000, 18)), "got %s", rate)
	})

	t.Run("zero answer is an oracle error", func(t *testing.T) {
		feed := oracle.NewMockFeed(8, big.NewInt(0))

		_, err := NormalizedRate(ctx, feed)
		require.ErrorIs(t, err, oracle.ErrBadAnswer)
	})

	t.Run("negative answer is an oracle error", func(t *testing.T) {
		feed := oracle.NewMockFeed(8, big.NewInt(-1))

		_, err := NormalizedRate(ctx, feed)
		require.ErrorIs(t, err, oracle.ErrBadAnswer)
	})

	t.Run("feed failure is an oracle error", func(t *testing.T) {
		_, err := NormalizedRate(ctx, failingFeed{})
		require.ErrorIs(t, err, oracle.ErrBadAnswer)
	})
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	feed := oracle.NewMockFeed(8, big.NewInt(200_000_000_000)) // $2000 per unit

	t.Run("0.1 units converts to $200", func(t *testing.T) {
		raw := decimal.New(1, 17) // 0.1 units in wei

		refValue, err := Convert(ctx, raw, feed)
		require.NoError(t, err)
		require.True(t, refValue.Equal(decimal.New(200, 18)), "got %s", refValue)
	})

	t.Run("0.00001 units converts to $0.02", func(t *testing.T) {
		raw := decimal.New(1, 13)

		refValue, err := Convert(ctx, raw, feed)
		require.NoError(t, err)
		require.True(t, refValue.Equal(decimal.New(2, 16)), "got %s", refValue)
	})

	t.Run("zero amount converts to zero", func(t *testing.T) {
		refValue, err := Convert(ctx, decimal.Zero, feed)
		require.NoError(t, err)
		require.True(t, refValue.IsZero())
	})

	t.Run("deterministic for a fixed feed state", func(t *testing.T) {
		raw := decimal.New(3, 17)

		first, err := Convert(ctx, raw, feed)
		require.NoError(t, err)
		second, err := Convert(ctx, raw, feed)
		require.NoError(t, err)
		require.True(t, first.Equal(second))
	})
}
