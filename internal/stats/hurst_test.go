package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendingPrices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 0.5*float64(i) + 2*math.Sin(1.3*float64(i))
	}
	return out
}

func oscillatingPrices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 2*math.Sin(2.9*float64(i)) + 1.5*math.Sin(1.3*float64(i))
	}
	return out
}

func TestHurst_BelowFloor(t *testing.T) {
	_, err := Hurst(trendingPrices(99), KindPrice)
	require.Error(t, err)
}

func TestHurst_TrendingVsMeanReverting(t *testing.T) {
	trend, err := Hurst(trendingPrices(200), KindPrice)
	require.NoError(t, err)
	revert, err := Hurst(oscillatingPrices(200), KindPrice)
	require.NoError(t, err)

	assert.Greater(t, trend, 0.6, "persistent trend should score high")
	assert.Less(t, revert, 0.5, "bounded oscillation should score low")
	assert.Greater(t, trend, revert)
}

func TestHurst_Deterministic(t *testing.T) {
	s := trendingPrices(250)
	a, err := Hurst(s, KindPrice)
	require.NoError(t, err)
	b, err := Hurst(s, KindPrice)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHurst_ZeroPriceFails(t *testing.T) {
	s := trendingPrices(150)
	s[3] = 0 // price mode divides by the chunk minimum
	_, err := Hurst(s, KindPrice)
	require.Error(t, err)
}

func TestHurst_UnknownKind(t *testing.T) {
	_, err := Hurst(trendingPrices(150), "weird")
	require.Error(t, err)
}

func TestHurst_RandomWalkKind(t *testing.T) {
	// Cumulative sum of bounded oscillation, evaluated in random-walk mode.
	osc := oscillatingPrices(200)
	cum := make([]float64, len(osc))
	total := 0.0
	for i, v := range osc {
		total += v - 100
		cum[i] = total
	}
	h, err := Hurst(cum, KindRandomWalk)
	require.NoError(t, err)
	assert.Less(t, h, 0.5, "bounded partial sums should not look persistent")
}
