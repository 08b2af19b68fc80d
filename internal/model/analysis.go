package model

import "time"

// TestOutcome is the tagged result of one statistical routine: either a value,
// or a failure reason when the routine could not produce one.
type TestOutcome struct {
	Valid  bool
	Value  float64
	Reason string
}

// Outcome wraps a successful test value.
func Outcome(v float64) TestOutcome {
	return TestOutcome{Valid: true, Value: v}
}

// FailedOutcome records why a test produced no value.
func FailedOutcome(reason string) TestOutcome {
	return TestOutcome{Reason: reason}
}

// Ptr returns the value as a nullable pointer for serialization.
func (o TestOutcome) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// WindowResult is the evaluation of one sliding window of calendar dates.
// The ADF fields are always populated; a failing ADF aborts the whole run.
type WindowResult struct {
	Start      string // window start date, "2006-01-02"
	End        string // window end date, "2006-01-02"
	ADFStat    float64
	ADFPValue  float64
	KPSS       TestOutcome // KPSS p-value
	Hurst      TestOutcome // Hurst exponent
	Volatility TestOutcome // sample std of the return series
}

// Summary reduces a result table to the three stationarity percentages.
// Rows with a failed test count toward the denominator only.
type Summary struct {
	Windows  int
	PctADF   float64 // rows with ADF p-value < 0.05
	PctKPSS  float64 // rows with KPSS p-value > 0.05
	PctHurst float64 // rows with Hurst exponent in (0.4, 0.6)
}

// AnalysisRun is the immutable output of one full pipeline execution.
type AnalysisRun struct {
	RunID       string
	Series      *PriceSeries
	Results     []WindowResult
	Summary     *Summary // nil when the result table is empty
	Report      string
	GeneratedAt time.Time
}
