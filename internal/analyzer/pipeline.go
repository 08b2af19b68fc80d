package analyzer

import (
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/window"
)

// Analyze slides a windowDays-wide window across the series and evaluates
// every window, returning the result table in window-start order. Skipped
// windows produce no row. The error path is reserved for fatal numeric
// faults; insufficient data simply yields an empty table.
func Analyze(series *model.PriceSeries, windowDays int) ([]model.WindowResult, error) {
	windows := window.Segment(series.Bars, windowDays)
	results := make([]model.WindowResult, 0, len(windows))
	for _, w := range windows {
		res, err := EvaluateWindow(w)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}
