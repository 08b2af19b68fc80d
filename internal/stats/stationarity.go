package stats

import (
	"errors"
	"fmt"
	"math"
)

// Regression types for the KPSS test.
const (
	RegressionConstant = "c"  // level stationarity
	RegressionTrend    = "ct" // trend stationarity
)

// ADFResult holds the outcome of an augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	NObs      int
}

// ADF runs the augmented Dickey-Fuller unit-root test with a constant-only
// regression. The null hypothesis is that the series has a unit root; a
// p-value below 0.05 rejects it. maxLag <= 0 selects the default lag order
// floor((n-1)^(1/3)). Any numerical failure is returned as an error.
func ADF(series []float64, maxLag int) (*ADFResult, error) {
	n := len(series)
	if n < 2 {
		return nil, fmt.Errorf("adf: need at least 2 observations, got %d", n)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}
	if maxLag < 0 {
		maxLag = 0
	}

	d := diff(series)

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i*delta_y_{t-i}).
	// The test statistic is the t-stat on beta.
	nObs := n - maxLag - 1
	k := 2 + maxLag
	if nObs <= k {
		return nil, fmt.Errorf("adf: %d observations too few for %d regressors", nObs, k)
	}

	y := make([]float64, nObs)
	x := make([][]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = d[t]
		x[i] = make([]float64, k)
		x[i][0] = 1
		x[i][1] = series[t]
		for j := 1; j <= maxLag; j++ {
			x[i][1+j] = d[t-j]
		}
	}

	coeffs, se, err := leastSquares(x, y)
	if err != nil {
		return nil, fmt.Errorf("adf regression: %w", err)
	}
	if se[1] == 0 || math.IsNaN(se[1]) {
		return nil, errors.New("adf: degenerate standard error for lagged level")
	}

	stat := coeffs[1] / se[1]
	if math.IsNaN(stat) || math.IsInf(stat, 0) {
		return nil, errors.New("adf: invalid test statistic")
	}

	return &ADFResult{
		Statistic: stat,
		PValue:    adfPValue(stat),
		Lags:      maxLag,
		NObs:      nObs,
	}, nil
}

// adfPValue interpolates an approximate p-value for the constant-only ADF
// statistic from MacKinnon's tabulated critical values.
func adfPValue(stat float64) float64 {
	knots := []struct{ stat, p float64 }{
		{-6.00, 0.0001},
		{-3.96, 0.001},
		{-3.43, 0.01},
		{-2.86, 0.05},
		{-2.57, 0.10},
		{-1.94, 0.25},
		{-1.62, 0.50},
		{-0.50, 0.90},
		{1.00, 0.999},
	}
	if stat <= knots[0].stat {
		return knots[0].p
	}
	for i := 1; i < len(knots); i++ {
		if stat <= knots[i].stat {
			lo, hi := knots[i-1], knots[i]
			frac := (stat - lo.stat) / (hi.stat - lo.stat)
			return lo.p + frac*(hi.p-lo.p)
		}
	}
	return knots[len(knots)-1].p
}

// KPSSResult holds the outcome of a KPSS stationarity test.
type KPSSResult struct {
	Statistic float64
	PValue    float64
	Lags      int
}

// KPSS runs the Kwiatkowski-Phillips-Schmidt-Shin test. The null hypothesis is
// that the series is stationary around a level (regression "c") or a trend
// ("ct"); a p-value above 0.05 supports stationarity. nlags <= 0 selects the
// data-dependent automatic bandwidth. Degenerate input (too short, no
// variation) is reported as a recoverable error.
func KPSS(series []float64, regression string, nlags int) (*KPSSResult, error) {
	n := len(series)
	if n < 3 {
		return nil, fmt.Errorf("kpss: need at least 3 observations, got %d", n)
	}
	if regression != RegressionConstant && regression != RegressionTrend {
		return nil, fmt.Errorf("kpss: unknown regression %q", regression)
	}

	residuals := make([]float64, n)
	if regression == RegressionTrend {
		// Linear detrending: y = a + b*t + residual.
		var sumT, sumY, sumTY, sumT2 float64
		for i, v := range series {
			t := float64(i)
			sumT += t
			sumY += v
			sumTY += t * v
			sumT2 += t * t
		}
		nf := float64(n)
		den := nf*sumT2 - sumT*sumT
		if den == 0 {
			return nil, errors.New("kpss: degenerate trend regression")
		}
		b := (nf*sumTY - sumT*sumY) / den
		a := (sumY - b*sumT) / nf
		for i, v := range series {
			residuals[i] = v - a - b*float64(i)
		}
	} else {
		mean := Mean(series)
		for i, v := range series {
			residuals[i] = v - mean
		}
	}

	if nlags <= 0 {
		auto, err := kpssAutoLags(residuals)
		if err != nil {
			return nil, err
		}
		nlags = auto
	}
	if nlags >= n {
		nlags = n - 1
	}

	// Long-run variance via Newey-West with Bartlett weights.
	s2 := dot(residuals, residuals) / float64(n)
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}
	if s2 <= 0 || math.IsNaN(s2) {
		return nil, errors.New("kpss: non-positive long-run variance, series has no usable variation")
	}

	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}
	etaSq := dot(cumSum, cumSum)

	stat := etaSq / (float64(n) * float64(n) * s2)
	if math.IsNaN(stat) || math.IsInf(stat, 0) {
		return nil, errors.New("kpss: invalid test statistic")
	}

	return &KPSSResult{
		Statistic: stat,
		PValue:    kpssPValue(stat, regression),
		Lags:      nlags,
	}, nil
}

// kpssAutoLags picks the truncation lag with the data-dependent Newey-West
// bandwidth rule used by statsmodels for nlags="auto".
func kpssAutoLags(residuals []float64) (int, error) {
	n := len(residuals)
	covLags := int(math.Pow(float64(n), 2.0/9.0))
	s0 := dot(residuals, residuals) / float64(n)
	s1 := 0.0
	for i := 1; i <= covLags && i < n; i++ {
		prod := dot(residuals[i:], residuals[:n-i]) / (float64(n) / 2.0)
		s0 += prod
		s1 += float64(i) * prod
	}
	if s0 == 0 {
		return 0, errors.New("kpss: zero spectral density estimate, series has no variation")
	}
	sHat := s1 / s0
	gammaHat := 1.1447 * math.Pow(sHat*sHat, 1.0/3.0)
	lags := int(gammaHat * math.Pow(float64(n), 1.0/3.0))
	if lags < 0 {
		lags = 0
	}
	if lags >= n {
		lags = n - 1
	}
	return lags, nil
}

// kpssPValue interpolates the p-value from the tabulated critical values,
// clamped to the [0.01, 0.10] range the table covers.
func kpssPValue(stat float64, regression string) float64 {
	crit := []float64{0.347, 0.463, 0.574, 0.739}
	if regression == RegressionTrend {
		crit = []float64{0.119, 0.146, 0.176, 0.216}
	}
	pvals := []float64{0.10, 0.05, 0.025, 0.01}

	if stat <= crit[0] {
		return pvals[0]
	}
	if stat >= crit[len(crit)-1] {
		return pvals[len(pvals)-1]
	}
	for i := 1; i < len(crit); i++ {
		if stat <= crit[i] {
			frac := (stat - crit[i-1]) / (crit[i] - crit[i-1])
			return pvals[i-1] + frac*(pvals[i]-pvals[i-1])
		}
	}
	return pvals[len(pvals)-1]
}
