package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"GoldSentinel/internal/model"
)

func TestFormatSummary_NoData(t *testing.T) {
	assert.Equal(t, NoDataMessage, FormatSummary(nil))
}

func TestFormatSummary_TwoDecimalPercentages(t *testing.T) {
	out := FormatSummary(&model.Summary{
		Windows:  3,
		PctADF:   100.0 / 3,
		PctKPSS:  66.666666,
		PctHurst: 0,
	})
	assert.Contains(t, out, "(ADF): 33.33%")
	assert.Contains(t, out, "(KPSS): 66.67%")
	assert.Contains(t, out, "stationarity: 0.00%")
}

func TestFormatRun(t *testing.T) {
	run := &model.AnalysisRun{
		RunID:       "abc",
		GeneratedAt: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		Series: &model.PriceSeries{
			Symbol:   "GC=F",
			Interval: "15m",
			Period:   "5d",
			Bars:     make([]model.Bar, 4),
		},
		Results: []model.WindowResult{{}, {}},
		Summary: &model.Summary{Windows: 2, PctADF: 50, PctKPSS: 50, PctHurst: 0},
	}
	out := FormatRun(run)
	assert.Contains(t, out, "run abc")
	assert.Contains(t, out, "GC=F 15m bars over 5d: 4 fetched")
	assert.Contains(t, out, "Windows evaluated: 2")
	assert.Contains(t, out, "(ADF): 50.00%")
}

func TestFormatResultRow_NullFields(t *testing.T) {
	r := model.WindowResult{
		Start:      "2024-03-04",
		End:        "2024-03-05",
		ADFPValue:  0.0123,
		KPSS:       model.FailedOutcome("no variation"),
		Hurst:      model.FailedOutcome("fewer than 100 observations"),
		Volatility: model.Outcome(0.001234),
	}
	out := FormatResultRow(r)
	assert.Contains(t, out, "adf_p=0.0123")
	assert.Contains(t, out, "kpss_p=n/a")
	assert.Contains(t, out, "hurst=n/a")
	assert.Contains(t, out, "vol=0.001234")
}
