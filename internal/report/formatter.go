// Package report renders analysis output as plain text.
package report

import (
	"fmt"
	"strings"

	"GoldSentinel/internal/model"
)

// NoDataMessage is returned when the result table is empty.
const NoDataMessage = "Not enough information to run the analysis."

// FormatSummary formats the three stationarity percentages into the fixed
// summary block. A nil summary yields the no-data message.
func FormatSummary(sum *model.Summary) string {
	if sum == nil {
		return NoDataMessage
	}
	var b strings.Builder
	b.WriteString("Analysis summary:\n")
	b.WriteString(fmt.Sprintf("- Probability that gold is stationary (ADF): %.2f%%\n", sum.PctADF))
	b.WriteString(fmt.Sprintf("- Probability that gold is stationary (KPSS): %.2f%%\n", sum.PctKPSS))
	b.WriteString(fmt.Sprintf("- Hurst exponent indicating stationarity: %.2f%%\n", sum.PctHurst))
	return b.String()
}

// FormatRun formats a full analysis run for logs and the dashboard text view.
func FormatRun(run *model.AnalysisRun) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("GoldSentinel run %s | %s\n", run.RunID, run.GeneratedAt.Format("2006-01-02 15:04:05")))
	if run.Series != nil {
		b.WriteString(fmt.Sprintf("%s %s bars over %s: %d fetched\n",
			run.Series.Symbol, run.Series.Interval, run.Series.Period, len(run.Series.Bars)))
	}
	b.WriteString(fmt.Sprintf("Windows evaluated: %d\n\n", len(run.Results)))
	b.WriteString(FormatSummary(run.Summary))
	return b.String()
}

// FormatResultRow renders one window result as a single log-friendly line.
func FormatResultRow(r model.WindowResult) string {
	kpss := "n/a"
	if r.KPSS.Valid {
		kpss = fmt.Sprintf("%.4f", r.KPSS.Value)
	}
	hurst := "n/a"
	if r.Hurst.Valid {
		hurst = fmt.Sprintf("%.4f", r.Hurst.Value)
	}
	vol := "n/a"
	if r.Volatility.Valid {
		vol = fmt.Sprintf("%.6f", r.Volatility.Value)
	}
	return fmt.Sprintf("%s..%s adf_p=%.4f kpss_p=%s hurst=%s vol=%s",
		r.Start, r.End, r.ADFPValue, kpss, hurst, vol)
}
