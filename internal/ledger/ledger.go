package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	interfaces "github.com/rocknwa/FundMe/internal/interfaces"
	"github.com/rocknwa/FundMe/internal/models"
	modelevents "github.com/rocknwa/FundMe/internal/models/events"
	"github.com/rocknwa/FundMe/internal/oracle"
	"github.com/rocknwa/FundMe/internal/rates"
)

// MinimumRefValue is the smallest acceptable contribution, expressed in the
// reference currency at 18 fractional decimals (5 reference units).
var MinimumRefValue = decimal.New(5, 18)

const (
	TopicContributionAccepted = "contribution_accepted"
	TopicFundsWithdrawn       = "funds_withdrawn"
)

// FundLedger is the contribution-accounting core. It holds the immutable
// owner identity, a read-only price feed reference, and the bookkeeping
// store; the owner may sweep the accumulated balance out through the
// treasury.
type FundLedger struct {
	owner     string
	feed      oracle.PriceFeed
	store     interfaces.FundStore
	treasury  interfaces.Treasury
	publisher interfaces.EventPublisher
}

// NewFundLedger fixes the owner and feed for the ledger's lifetime.
// The publisher may be nil when eventing is not wired.
func NewFundLedger(owner string, feed oracle.PriceFeed, store interfaces.FundStore, treasury interfaces.Treasury, publisher interfaces.EventPublisher) *FundLedger {
	return &FundLedger{
		owner:     owner,
		feed:      feed,
		store:     store,
		treasury:  treasury,
		publisher: publisher,
	}
}

// Contribute converts rawAmount to reference units at the feed's latest rate
// and records it if the converted value meets the minimum. Any failure leaves
// the books unchanged.
func (l *FundLedger) Contribute(ctx context.Context, contributorID string, rawAmount decimal.Decimal) (models.Contribution, error) {
	refValue, err := rates.Convert(ctx, rawAmount, l.feed)
	if err != nil {
		return models.Contribution{}, err
	}

	if refValue.LessThan(MinimumRefValue) {
		return models.Contribution{}, fmt.Errorf("%w: %s converts to %s, need %s",
			ErrBelowMinimum, rawAmount, refValue, MinimumRefValue)
	}

	if err := l.store.AddContribution(ctx, contributorID, rawAmount); err != nil {
		return models.Contribution{}, err
	}

	contribution := models.Contribution{
		ID:            uuid.New().String(),
		ContributorID: contributorID,
		RawAmount:     rawAmount,
		RefValue:      refValue,
		CreatedAt:     time.Now(),
	}

	l.publish(TopicContributionAccepted, modelevents.ContributionAccepted{
		EventID:       contribution.ID,
		ContributorID: contributorID,
		RawAmount:     rawAmount,
		RefValue:      refValue,
		OccurredAt:    contribution.CreatedAt,
	})

	return contribution, nil
}

// Withdraw sweeps the full held balance to the owner. Bookkeeping is cleared
// strictly before the release step, so a re-entrant call during the release
// observes an already-reset ledger. If the release fails the prior state is
// restored and ErrTransferFailed is returned.
func (l *FundLedger) Withdraw(ctx context.Context, callerID string) (decimal.Decimal, error) {
	if callerID != l.owner {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNotOwner, callerID)
	}

	snap, err := l.store.Reset(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if err := l.treasury.Release(ctx, l.owner, snap.Balance); err != nil {
		if restoreErr := l.store.Restore(ctx, snap); restoreErr != nil {
			return decimal.Zero, fmt.Errorf("%w: %v (restore also failed: %v)", ErrTransferFailed, err, restoreErr)
		}
		return decimal.Zero, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	l.publish(TopicFundsWithdrawn, modelevents.FundsWithdrawn{
		EventID:      uuid.New().String(),
		OwnerID:      l.owner,
		Amount:       snap.Balance,
		Contributors: len(snap.Records),
		OccurredAt:   time.Now(),
	})

	return snap.Balance, nil
}

// AmountContributed returns the cumulative raw amount recorded for a
// contributor, zero if none.
func (l *FundLedger) AmountContributed(contributorID string) (decimal.Decimal, error) {
	return l.store.AmountContributed(contributorID)
}

// ContributorAt returns the contributor identity at the given sequence
// position.
func (l *FundLedger) ContributorAt(index int) (string, error) {
	contributors, err := l.store.Contributors()
	if err != nil {
		return "", err
	}

	if index < 0 || index >= len(contributors) {
		return "", fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(contributors))
	}
	return contributors[index], nil
}

// TotalBalance returns the ledger's full held balance in raw units.
func (l *FundLedger) TotalBalance() (decimal.Decimal, error) {
	return l.store.TotalBalance()
}

func (l *FundLedger) Owner() string {
	return l.owner
}

func (l *FundLedger) Feed() oracle.PriceFeed {
	return l.feed
}

// publish delivers events best effort; a broker outage must not undo an
// accepted contribution or a completed withdrawal.
func (l *FundLedger) publish(topic string, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(topic, event); err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("event publish failed")
	}
}
