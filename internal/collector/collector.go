package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"GoldSentinel/internal/barcache"
	"GoldSentinel/internal/model"
)

// Collector orchestrates fetching price data through the cache.
type Collector struct {
	fetcher Fetcher
	cache   barcache.Cache
	logger  zerolog.Logger
}

// New creates a Collector. A nil cache disables caching.
func New(fetcher Fetcher, cache barcache.Cache) *Collector {
	if cache == nil {
		cache = barcache.NewNoopCache()
	}
	return &Collector{
		fetcher: fetcher,
		cache:   cache,
		logger:  log.With().Str("component", "collector").Logger(),
	}
}

// Collect returns the price series for the symbol, serving from the cache
// when a fresh entry exists and falling back to the fetcher otherwise.
func (c *Collector) Collect(ctx context.Context, symbol, interval, period string) (*model.PriceSeries, error) {
	if bars, ok := c.cache.Get(symbol, interval, period); ok {
		c.logger.Debug().Str("symbol", symbol).Int("bars", len(bars)).Msg("cache hit")
		return &model.PriceSeries{
			Symbol:    symbol,
			Interval:  interval,
			Period:    period,
			Bars:      bars,
			FetchedAt: time.Now(),
		}, nil
	}

	bars, err := c.fetcher.FetchBars(ctx, symbol, interval, period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars: %w", symbol, err)
	}

	if err := c.cache.Put(symbol, interval, period, bars); err != nil {
		c.logger.Warn().Err(err).Msg("cache write failed")
	}

	return &model.PriceSeries{
		Symbol:    symbol,
		Interval:  interval,
		Period:    period,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}
