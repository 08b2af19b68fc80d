package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/model"
)

func row(adfP float64) model.WindowResult {
	return model.WindowResult{
		ADFPValue: adfP,
		KPSS:      model.Outcome(0.5),
		Hurst:     model.Outcome(0.5),
	}
}

func TestSummarize_EmptyTable(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]model.WindowResult{}))
}

func TestSummarize_ADFPercentage(t *testing.T) {
	// 6 of 10 rows below the 0.05 threshold.
	var rows []model.WindowResult
	for i := 0; i < 6; i++ {
		rows = append(rows, row(0.01))
	}
	for i := 0; i < 4; i++ {
		rows = append(rows, row(0.50))
	}

	sum := Summarize(rows)
	require.NotNil(t, sum)
	assert.Equal(t, 10, sum.Windows)
	assert.Equal(t, 60.0, sum.PctADF)
}

func TestSummarize_FailedTestsCountDenominatorOnly(t *testing.T) {
	rows := []model.WindowResult{
		{ADFPValue: 0.5, KPSS: model.Outcome(0.5), Hurst: model.Outcome(0.5)},
		{ADFPValue: 0.5, KPSS: model.FailedOutcome("degenerate"), Hurst: model.FailedOutcome("too short")},
	}
	sum := Summarize(rows)
	require.NotNil(t, sum)
	assert.Equal(t, 50.0, sum.PctKPSS)
	assert.Equal(t, 50.0, sum.PctHurst)
}

func TestSummarize_Thresholds(t *testing.T) {
	rows := []model.WindowResult{
		{ADFPValue: 0.05, KPSS: model.Outcome(0.05), Hurst: model.Outcome(0.4)}, // all exactly on boundary: none count
		{ADFPValue: 0.049, KPSS: model.Outcome(0.051), Hurst: model.Outcome(0.41)},
		{ADFPValue: 0.9, KPSS: model.Outcome(0.01), Hurst: model.Outcome(0.6)},
	}
	sum := Summarize(rows)
	require.NotNil(t, sum)
	assert.InDelta(t, 100.0/3, sum.PctADF, 1e-9)
	assert.InDelta(t, 100.0/3, sum.PctKPSS, 1e-9)
	assert.InDelta(t, 100.0/3, sum.PctHurst, 1e-9)
}
