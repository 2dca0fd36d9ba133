package ports

import (
	"context"
	"time"

	"franceMiningCounter/internal/domain"
)

// BlockSource provides the current chain tip height.
type BlockSource interface {
	// BlockHeight retrieves the height of the current best block.
	BlockHeight(ctx context.Context) (int64, error)
}

// PriceSource provides BTC prices quoted in EUR.
type PriceSource interface {
	// SpotPriceEUR retrieves the current BTC/EUR price.
	SpotPriceEUR(ctx context.Context) (float64, error)

	// PriceRangeEUR retrieves the ordered price series between from and to.
	PriceRangeEUR(ctx context.Context, from, to time.Time) ([]domain.PriceSample, error)
}

// HashRateSource provides the network hash rate.
type HashRateSource interface {
	// HashRateTHs retrieves the latest network hash rate in TH/s.
	HashRateTHs(ctx context.Context) (float64, error)
}
