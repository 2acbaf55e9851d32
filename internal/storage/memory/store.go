package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	interfaces "github.com/rocknwa/FundMe/internal/interfaces"
	"github.com/rocknwa/FundMe/internal/models"
)

// MemoryFundStore is an in-memory implementation of interfaces.FundStore.
// It is thread-safe and returns copies so callers cannot mutate internal state.
type MemoryFundStore struct {
	mu       sync.Mutex
	records  map[string]decimal.Decimal // cumulative raw amount per contributor
	sequence []string                   // one entry per accepted contribution
	balance  decimal.Decimal
}

// NewMemoryFundStore creates an empty in-memory fund store.
func NewMemoryFundStore() *MemoryFundStore {
	return &MemoryFundStore{
		records:  make(map[string]decimal.Decimal),
		sequence: make([]string, 0),
		balance:  decimal.Zero,
	}
}

func (m *MemoryFundStore) AddContribution(ctx context.Context, contributorID string, rawAmount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[contributorID] = m.records[contributorID].Add(rawAmount)
	m.sequence = append(m.sequence, contributorID)
	m.balance = m.balance.Add(rawAmount)
	return nil
}

func (m *MemoryFundStore) AmountContributed(contributorID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.records[contributorID], nil
}

func (m *MemoryFundStore) Contributors() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]string, len(m.sequence))
	copy(copied, m.sequence)
	return copied, nil
}

func (m *MemoryFundStore) TotalBalance() (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.balance, nil
}

// Reset clears all bookkeeping and hands back the prior state for restore.
func (m *MemoryFundStore) Reset(ctx context.Context) (models.LedgerSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := models.LedgerSnapshot{
		Records:  m.records,
		Sequence: m.sequence,
		Balance:  m.balance,
	}

	m.records = make(map[string]decimal.Decimal)
	m.sequence = make([]string, 0)
	m.balance = decimal.Zero
	return snap, nil
}

func (m *MemoryFundStore) Restore(ctx context.Context, snap models.LedgerSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]decimal.Decimal, len(snap.Records))
	for id, amount := range snap.Records {
		m.records[id] = amount
	}
	m.sequence = make([]string, len(snap.Sequence))
	copy(m.sequence, snap.Sequence)
	m.balance = snap.Balance
	return nil
}

// Compile-time check: ensure MemoryFundStore implements FundStore interface
var _ interfaces.FundStore = (*MemoryFundStore)(nil)
