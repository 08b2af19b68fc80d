package stats

import (
	"errors"
	"fmt"
	"math"
)

// Series kinds for the Hurst estimator.
const (
	KindRandomWalk = "random_walk"
	KindPrice      = "price"
)

// HurstMinLen is the floor below which the rescaled-range estimator is
// considered unreliable.
const HurstMinLen = 100

// Hurst estimates the Hurst exponent of a series with the simplified
// rescaled-range method: the series is chopped into non-overlapping chunks at
// logarithmically spaced sizes, the mean R/S is computed per size, and the
// exponent is the slope of log(R/S) against log(size). Values above 0.5
// indicate trending behavior, below 0.5 mean reversion. Numerical-domain
// failures (zero prices, degenerate chunks) are returned as errors.
func Hurst(series []float64, kind string) (float64, error) {
	n := len(series)
	if n < HurstMinLen {
		return 0, fmt.Errorf("hurst: series length %d below minimum of %d", n, HurstMinLen)
	}
	if kind != KindRandomWalk && kind != KindPrice {
		return 0, fmt.Errorf("hurst: unknown kind %q", kind)
	}

	// Chunk sizes 10^1, 10^1.25, ... up to the series length.
	maxWindow := float64(n - 1)
	var sizes []int
	for x := 1.0; x < math.Log10(maxWindow); x += 0.25 {
		sizes = append(sizes, int(math.Pow(10, x)))
	}
	sizes = append(sizes, n)

	logSize := make([]float64, 0, len(sizes))
	logRS := make([]float64, 0, len(sizes))
	for _, w := range sizes {
		var rs []float64
		for start := 0; start+w <= n; start += w {
			v := rescaledRange(series[start:start+w], kind)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, errors.New("hurst: invalid rescaled range, series not usable in this mode")
			}
			if v != 0 {
				rs = append(rs, v)
			}
		}
		if len(rs) == 0 {
			return 0, fmt.Errorf("hurst: no defined rescaled range at chunk size %d", w)
		}
		m := Mean(rs)
		if m <= 0 {
			return 0, errors.New("hurst: non-positive mean rescaled range")
		}
		logSize = append(logSize, math.Log10(float64(w)))
		logRS = append(logRS, math.Log10(m))
	}

	h := slope(logSize, logRS)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, errors.New("hurst: degenerate log-log regression")
	}
	return h, nil
}

// rescaledRange computes a single simplified R/S value for one chunk.
// A zero return marks an undefined interval that the caller skips.
func rescaledRange(chunk []float64, kind string) float64 {
	var r, s float64
	switch kind {
	case KindPrice:
		mx, mn := chunk[0], chunk[0]
		for _, v := range chunk[1:] {
			if v > mx {
				mx = v
			}
			if v < mn {
				mn = v
			}
		}
		if mn == 0 {
			return math.NaN()
		}
		r = mx/mn - 1
		s = SampleStd(PctChange(chunk))
	default: // random walk
		mx, mn := chunk[0], chunk[0]
		for _, v := range chunk[1:] {
			if v > mx {
				mx = v
			}
			if v < mn {
				mn = v
			}
		}
		r = mx - mn
		s = SampleStd(diff(chunk))
	}
	if r == 0 || s == 0 {
		return 0
	}
	return r / s
}

// slope returns the least squares slope of y against x.
func slope(x, y []float64) float64 {
	n := float64(len(x))
	mx, my := Mean(x), Mean(y)
	var num, den float64
	for i := range x {
		num += (x[i] - mx) * (y[i] - my)
		den += (x[i] - mx) * (x[i] - mx)
	}
	if den == 0 || n < 2 {
		return math.NaN()
	}
	return num / den
}
