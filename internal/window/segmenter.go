// Package window slices a bar series into overlapping windows of consecutive
// distinct calendar dates.
package window

import (
	"sort"

	"GoldSentinel/internal/model"
)

// Window is a contiguous run of distinct calendar dates together with the
// bars that fall on them.
type Window struct {
	Dates []string // sorted, "2006-01-02"
	Bars  []model.Bar
}

// Start returns the first calendar date of the window.
func (w Window) Start() string { return w.Dates[0] }

// End returns the last calendar date of the window.
func (w Window) End() string { return w.Dates[len(w.Dates)-1] }

// Segment partitions the bars into sliding windows of windowDays distinct
// calendar dates, advancing one date at a time. A series spanning fewer than
// windowDays distinct dates yields no windows; for d distinct dates the result
// has exactly max(0, d-windowDays+1) entries.
func Segment(bars []model.Bar, windowDays int) []Window {
	if windowDays < 1 || len(bars) == 0 {
		return nil
	}

	byDate := make(map[string][]model.Bar)
	for _, b := range bars {
		d := b.Date()
		byDate[d] = append(byDate[d], b)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if len(dates) < windowDays {
		return nil
	}

	windows := make([]Window, 0, len(dates)-windowDays+1)
	for i := 0; i+windowDays <= len(dates); i++ {
		span := dates[i : i+windowDays]
		var wb []model.Bar
		for _, d := range span {
			wb = append(wb, byDate[d]...)
		}
		windows = append(windows, Window{Dates: span, Bars: wb})
	}
	return windows
}
