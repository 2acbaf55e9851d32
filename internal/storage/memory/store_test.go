package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMemoryFundStore(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates amounts per contributor", func(t *testing.T) {
		store := NewMemoryFundStore()

		require.NoError(t, store.AddContribution(ctx, "alice", decimal.New(10, 0)))
		require.NoError(t, store.AddContribution(ctx, "alice", decimal.New(5, 0)))
		require.NoError(t, store.AddContribution(ctx, "bob", decimal.New(7, 0)))

		amount, err := store.AmountContributed("alice")
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.New(15, 0)))

		balance, err := store.TotalBalance()
		require.NoError(t, err)
		require.True(t, balance.Equal(decimal.New(22, 0)))

		contributors, err := store.Contributors()
		require.NoError(t, err)
		require.Equal(t, []string{"alice", "alice", "bob"}, contributors)
	})

	t.Run("Contributors returns a copy", func(t *testing.T) {
		store := NewMemoryFundStore()
		require.NoError(t, store.AddContribution(ctx, "alice", decimal.New(1, 0)))

		contributors, err := store.Contributors()
		require.NoError(t, err)
		contributors[0] = "mallory"

		again, err := store.Contributors()
		require.NoError(t, err)
		require.Equal(t, []string{"alice"}, again)
	})

	t.Run("Reset clears state and returns the prior snapshot", func(t *testing.T) {
		store := NewMemoryFundStore()
		require.NoError(t, store.AddContribution(ctx, "alice", decimal.New(10, 0)))
		require.NoError(t, store.AddContribution(ctx, "bob", decimal.New(7, 0)))

		snap, err := store.Reset(ctx)
		require.NoError(t, err)
		require.True(t, snap.Balance.Equal(decimal.New(17, 0)))
		require.Equal(t, []string{"alice", "bob"}, snap.Sequence)
		require.True(t, snap.Records["alice"].Equal(decimal.New(10, 0)))

		balance, err := store.TotalBalance()
		require.NoError(t, err)
		require.True(t, balance.IsZero())

		contributors, err := store.Contributors()
		require.NoError(t, err)
		require.Empty(t, contributors)
	})

	t.Run("Restore reinstates a snapshot", func(t *testing.T) {
		store := NewMemoryFundStore()
		require.NoError(t, store.AddContribution(ctx, "alice", decimal.New(10, 0)))

		snap, err := store.Reset(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Restore(ctx, snap))

		amount, err := store.AmountContributed("alice")
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.New(10, 0)))

		contributors, err := store.Contributors()
		require.NoError(t, err)
		require.Equal(t, []string{"alice"}, contributors)

		balance, err := store.TotalBalance()
		require.NoError(t, err)
		require.True(t, balance.Equal(decimal.New(10, 0)))
	})
}
