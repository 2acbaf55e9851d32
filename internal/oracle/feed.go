package oracle

import (
	"context"
	"errors"
	"math/big"
	"time"
)

// ErrBadAnswer indicates the feed could not supply a usable price answer.
var ErrBadAnswer = errors.New("oracle: no usable answer")

// RoundData is one reported observation from a price feed.
type RoundData struct {
	RoundID   uint64
	Answer    *big.Int // price scaled by 10^Decimals
	StartedAt time.Time
	UpdatedAt time.Time
}

// PriceFeed is the read surface of an external price source. The ledger
// holds a feed reference and never mutates it.
type PriceFeed interface {
	Latest(ctx context.Context) (RoundData, error)
	Decimals() uint8
}
