package oracle

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMockFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the initial answer at round 1", func(t *testing.T) {
		feed := NewMockFeed(8, big.NewInt(200_000_000_000))

		round, err := feed.Latest(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(1), round.RoundID)
		require.Equal(t, int64(200_000_000_000), round.Answer.Int64())
		require.Equal(t, uint8(8), feed.Decimals())
		require.False(t, round.UpdatedAt.IsZero())
	})

	t.Run("UpdateAnswer advances the round", func(t *testing.T) {
		feed := NewMockFeed(8, big.NewInt(200_000_000_000))
		feed.UpdateAnswer(big.NewInt(300_000_000_000))

		round, err := feed.Latest(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(2), round.RoundID)
		require.Equal(t, int64(300_000_000_000), round.Answer.Int64())
	})

	t.Run("SetRound overrides round metadata", func(t *testing.T) {
		feed := NewMockFeed(8, big.NewInt(1))
		startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		feed.SetRound(RoundData{
			RoundID:   42,
			Answer:    big.NewInt(7),
			StartedAt: startedAt,
			UpdatedAt: startedAt.Add(time.Minute),
		})

		round, err := feed.Latest(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(42), round.RoundID)
		require.Equal(t, int64(7), round.Answer.Int64())
		require.Equal(t, startedAt, round.StartedAt)
	})

	t.Run("Latest returns a copy of the answer", func(t *testing.T) {
		feed := NewMockFeed(8, big.NewInt(100))

		round, err := feed.Latest(ctx)
		require.NoError(t, err)
		round.Answer.SetInt64(-5)

		again, err := feed.Latest(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(100), again.Answer.Int64())
	})
}
