package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/model"
)

type fakeCache struct {
	bars []model.Bar
	puts int
}

func (f *fakeCache) Get(_, _, _ string) ([]model.Bar, bool) {
	return f.bars, f.bars != nil
}

func (f *fakeCache) Put(_, _, _ string, bars []model.Bar) error {
	f.bars = bars
	f.puts++
	return nil
}

func (f *fakeCache) Close() error { return nil }

func TestCollect_FetchesAndCaches(t *testing.T) {
	bars := GenerateMockBars(2400, 50)
	cache := &fakeCache{}
	col := New(&MockFetcher{Bars: bars}, cache)

	series, err := col.Collect(context.Background(), "GC=F", "15m", "5d")
	require.NoError(t, err)
	assert.Equal(t, "GC=F", series.Symbol)
	assert.Len(t, series.Bars, 50)
	assert.Equal(t, 1, cache.puts)
}

func TestCollect_ServesFromCache(t *testing.T) {
	cached := GenerateMockBars(2400, 20)
	cache := &fakeCache{bars: cached}
	// The fetcher would fail; a cache hit must avoid it entirely.
	col := New(&MockFetcher{Err: errors.New("provider down")}, cache)

	series, err := col.Collect(context.Background(), "GC=F", "15m", "5d")
	require.NoError(t, err)
	assert.Len(t, series.Bars, 20)
	assert.Equal(t, 0, cache.puts)
}

func TestCollect_PropagatesNoData(t *testing.T) {
	col := New(&MockFetcher{Err: ErrNoData}, nil)

	_, err := col.Collect(context.Background(), "GC=F", "15m", "5d")
	require.ErrorIs(t, err, ErrNoData)
}

func TestGenerateMockBars_SpansMultipleDates(t *testing.T) {
	bars := GenerateMockBars(2400, 300)
	dates := map[string]bool{}
	for _, b := range bars {
		require.Greater(t, b.Close, 0.0)
		dates[b.Date()] = true
	}
	assert.GreaterOrEqual(t, len(dates), 3)
}
