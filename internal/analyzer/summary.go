package analyzer

import "GoldSentinel/internal/model"

// Stationarity thresholds for the summary percentages.
const (
	PValueThreshold = 0.05
	HurstLowBound   = 0.4
	HurstHighBound  = 0.6
)

// Summarize reduces the result table to the three stationarity percentages.
// Rows whose test failed count toward the denominator but never the
// numerator. An empty table returns nil.
func Summarize(rows []model.WindowResult) *model.Summary {
	if len(rows) == 0 {
		return nil
	}

	var adf, kpss, hurst int
	for _, r := range rows {
		if r.ADFPValue < PValueThreshold {
			adf++
		}
		if r.KPSS.Valid && r.KPSS.Value > PValueThreshold {
			kpss++
		}
		if r.Hurst.Valid && r.Hurst.Value > HurstLowBound && r.Hurst.Value < HurstHighBound {
			hurst++
		}
	}

	total := float64(len(rows))
	return &model.Summary{
		Windows:  len(rows),
		PctADF:   float64(adf) / total * 100,
		PctKPSS:  float64(kpss) / total * 100,
		PctHurst: float64(hurst) / total * 100,
	}
}
