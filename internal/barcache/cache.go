// Package barcache caches fetched bars so repeated dashboard refreshes within
// a short span do not re-hit the market data provider. Only raw input data is
// cached; analysis results are never persisted.
package barcache

import "GoldSentinel/internal/model"

// Cache stores fetched bars keyed by (symbol, interval, period).
type Cache interface {
	// Get returns the cached bars for the key if a fresh entry exists.
	Get(symbol, interval, period string) ([]model.Bar, bool)
	Put(symbol, interval, period string, bars []model.Bar) error
	Close() error
}

// NoopCache is used when no cache backend is configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Get(_, _, _ string) ([]model.Bar, bool)  { return nil, false }
func (n *NoopCache) Put(_, _, _ string, _ []model.Bar) error { return nil }
func (n *NoopCache) Close() error                            { return nil }
