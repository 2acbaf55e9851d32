package oracle

import (
	"context"
	"math/big"
	"sync"
	"time"
)

// MockFeed is an in-process PriceFeed with a settable answer and round
// metadata. It mirrors the production read surface so the ledger can be
// exercised deterministically without a live feed.
type MockFeed struct {
	mu       sync.Mutex
	decimals uint8
	round    RoundData
}

// NewMockFeed creates a feed reporting initialAnswer at the given precision.
func NewMockFeed(decimals uint8, initialAnswer *big.Int) *MockFeed {
	now := time.Now()
	return &MockFeed{
		decimals: decimals,
		round: RoundData{
			RoundID:   1,
			Answer:    new(big.Int).Set(initialAnswer),
			StartedAt: now,
			UpdatedAt: now,
		},
	}
}

func (f *MockFeed) Latest(ctx context.Context) (RoundData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	round := f.round
	round.Answer = new(big.Int).Set(f.round.Answer)
	return round, nil
}

func (f *MockFeed) Decimals() uint8 {
	return f.decimals
}

// UpdateAnswer advances the feed to a new round reporting answer.
func (f *MockFeed) UpdateAnswer(answer *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	f.round = RoundData{
		RoundID:   f.round.RoundID + 1,
		Answer:    new(big.Int).Set(answer),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// SetRound overrides the full round metadata, for tests that need exact
// round ids or timestamps.
func (f *MockFeed) SetRound(round RoundData) {
	f.mu.Lock()
	defer f.mu.Unlock()

	round.Answer = new(big.Int).Set(round.Answer)
	f.round = round
}

var _ PriceFeed = (*MockFeed)(nil)
