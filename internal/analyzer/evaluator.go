// Package analyzer runs the sliding-window stationarity battery over a price
// series and reduces the per-window results to a summary.
package analyzer

import (
	"fmt"

	"GoldSentinel/internal/model"
	"GoldSentinel/internal/stats"
	"GoldSentinel/internal/window"
)

// EvaluateWindow runs the test battery on one window's return series.
// A window with fewer than 2 valid prices is skipped (nil result, nil error).
// KPSS and Hurst failures are recoverable and land in the row as failed
// outcomes; an ADF failure is fatal and aborts the run.
func EvaluateWindow(w window.Window) (*model.WindowResult, error) {
	prices := model.ValidCloses(w.Bars)
	if len(prices) < 2 {
		return nil, nil
	}
	returns := stats.PctChange(prices)

	adf, err := stats.ADF(returns, 0)
	if err != nil {
		return nil, fmt.Errorf("window %s..%s: %w", w.Start(), w.End(), err)
	}

	res := &model.WindowResult{
		Start:     w.Start(),
		End:       w.End(),
		ADFStat:   adf.Statistic,
		ADFPValue: adf.PValue,
	}

	if kpss, err := stats.KPSS(returns, stats.RegressionConstant, 0); err != nil {
		res.KPSS = model.FailedOutcome(err.Error())
	} else {
		res.KPSS = model.Outcome(kpss.PValue)
	}

	if len(returns) < stats.HurstMinLen {
		res.Hurst = model.FailedOutcome(fmt.Sprintf("fewer than %d observations", stats.HurstMinLen))
	} else if h, err := stats.Hurst(returns, stats.KindPrice); err != nil {
		res.Hurst = model.FailedOutcome(err.Error())
	} else {
		res.Hurst = model.Outcome(h)
	}

	if len(returns) < 2 {
		res.Volatility = model.FailedOutcome("single observation")
	} else {
		res.Volatility = model.Outcome(stats.SampleStd(returns))
	}

	return res, nil
}
