package model

import (
	"math"
	"time"
)

// Bar represents a single candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Date returns the calendar date of the bar in "2006-01-02" form.
func (b Bar) Date() string {
	return b.Time.Format("2006-01-02")
}

// PriceSeries holds one fetched batch of intraday bars for a symbol.
type PriceSeries struct {
	Symbol    string
	Interval  string
	Period    string
	Bars      []Bar
	FetchedAt time.Time
}

// Closes extracts the close prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// ValidCloses extracts close prices that are strictly positive and not NaN.
func ValidCloses(bars []Bar) []float64 {
	prices := make([]float64, 0, len(bars))
	for _, b := range bars {
		if b.Close > 0 && !math.IsNaN(b.Close) {
			prices = append(prices, b.Close)
		}
	}
	return prices
}
