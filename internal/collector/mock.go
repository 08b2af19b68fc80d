package collector

import (
	"context"
	"math"
	"time"

	"GoldSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _, _, _ string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(2400, 300), nil
}

// GenerateMockBars builds a drifting synthetic bar series with deterministic
// oscillation, one bar per 15 minutes across consecutive days.
func GenerateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().AddDate(0, 0, -count/96-2).Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		fi := float64(i)
		wiggle := 0.001 * (math.Sin(1.3*fi) + 0.7*math.Sin(2.9*fi) + 0.5*math.Sin(0.7*fi) + 0.3*math.Sin(0.37*fi))
		p := basePrice * (1 + float64(i-count/2)*0.0002 + wiggle)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * 15 * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.002,
			Low:    p * 0.998,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}
