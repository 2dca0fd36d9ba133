package app

import (
	"context"
	"fmt"
	"time"

	"franceMiningCounter/config"
	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/history"
	"franceMiningCounter/internal/ports"
)

// LiveFeed reads the live inputs of the counter and never fails: any source
// error is logged and replaced by the matching fallback value.
type LiveFeed struct {
	blocks    ports.BlockSource
	prices    ports.PriceSource
	hashes    ports.HashRateSource
	fallbacks config.Fallbacks
	logger    ports.Logger
}

// NewLiveFeed creates a feed over the three sources.
func NewLiveFeed(
	blocks ports.BlockSource,
	prices ports.PriceSource,
	hashes ports.HashRateSource,
	fallbacks config.Fallbacks,
	logger ports.Logger,
) (*LiveFeed, error) {
	if blocks == nil || prices == nil || hashes == nil || logger == nil {
		return nil, fmt.Errorf("missing required dependencies for LiveFeed")
	}
	return &LiveFeed{
		blocks:    blocks,
		prices:    prices,
		hashes:    hashes,
		fallbacks: fallbacks,
		logger:    logger,
	}, nil
}

// BlockHeight returns the chain tip height or the fallback height.
func (f *LiveFeed) BlockHeight(ctx context.Context) int64 {
	height, err := f.blocks.BlockHeight(ctx)
	if err != nil {
		f.logger.Error(ctx, err, "Erreur lors de la récupération de la hauteur de bloc",
			map[string]interface{}{"fallback": f.fallbacks.BlockHeight})
		return f.fallbacks.BlockHeight
	}
	return height
}

// PriceEUR returns the BTC/EUR spot price or the fallback price.
func (f *LiveFeed) PriceEUR(ctx context.Context) float64 {
	price, err := f.prices.SpotPriceEUR(ctx)
	if err != nil {
		f.logger.Error(ctx, err, "Erreur lors de la récupération du prix",
			map[string]interface{}{"fallback": f.fallbacks.PriceEUR})
		return f.fallbacks.PriceEUR
	}
	return price
}

// HashRateTHs returns the network hash rate or the fallback hash rate.
func (f *LiveFeed) HashRateTHs(ctx context.Context) float64 {
	hr, err := f.hashes.HashRateTHs(ctx)
	if err != nil {
		f.logger.Error(ctx, err, "Erreur lors de la récupération du hash rate",
			map[string]interface{}{"fallback": f.fallbacks.HashRateTHs})
		return f.fallbacks.HashRateTHs
	}
	return hr
}

// History returns the downsampled price series from history.RangeStart to
// local midnight of end, or the fallback series.
func (f *LiveFeed) History(ctx context.Context, end time.Time, stride int) []domain.Point {
	samples, err := f.prices.PriceRangeEUR(ctx, history.RangeStart, history.RangeEnd(end))
	if err != nil {
		f.logger.Error(ctx, err, "Erreur lors de la récupération de l'historique des prix",
			map[string]interface{}{"fallbackPoints": len(f.fallbacks.History)})
		fb := make([]domain.Point, len(f.fallbacks.History))
		copy(fb, f.fallbacks.History)
		return fb
	}
	points := history.Downsample(samples, stride)
	f.logger.Debug(ctx, "Historical prices downsampled", map[string]interface{}{"samples": len(samples), "points": len(points), "stride": stride})
	return points
}
