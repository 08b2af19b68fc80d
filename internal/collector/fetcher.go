package collector

import (
	"context"
	"errors"

	"GoldSentinel/internal/model"
)

// ErrNoData marks the input-unavailable condition: the provider answered but
// returned no usable bars. The pipeline must not run on it.
var ErrNoData = errors.New("no market data available")

// Fetcher defines the interface for fetching intraday bars.
type Fetcher interface {
	// FetchBars returns bars for the symbol at the given sampling interval
	// over the lookback period (provider range syntax, e.g. "5d").
	FetchBars(ctx context.Context, symbol, interval, period string) ([]model.Bar, error)
	Name() string
}
