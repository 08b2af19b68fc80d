package server

import (
	"fmt"
	"strings"

	"GoldSentinel/internal/model"
)

// ChartData carries everything the presentation layer needs to plot the
// evolution of the two p-value series: x-values, both series with nulls for
// failed tests, and the stationarity threshold reference line.
type ChartData struct {
	Dates     []string   `json:"dates"` // window start dates
	ADF       []*float64 `json:"adf_p_values"`
	KPSS      []*float64 `json:"kpss_p_values"`
	Threshold float64    `json:"threshold"`
}

// BuildChartData extracts the chart series from the result table.
func BuildChartData(rows []model.WindowResult) ChartData {
	data := ChartData{
		Dates:     make([]string, 0, len(rows)),
		ADF:       make([]*float64, 0, len(rows)),
		KPSS:      make([]*float64, 0, len(rows)),
		Threshold: 0.05,
	}
	for _, r := range rows {
		data.Dates = append(data.Dates, r.Start)
		p := r.ADFPValue
		data.ADF = append(data.ADF, &p)
		data.KPSS = append(data.KPSS, r.KPSS.Ptr())
	}
	return data
}

// Fixed geometry for the server-rendered plot.
const (
	svgWidth   = 900
	svgHeight  = 480
	svgPadLeft = 60
	svgPadTop  = 40
	svgPadBot  = 60
)

// RenderSVG renders the p-value chart as a standalone SVG document with the
// two series and a dashed line at the threshold. Null points break the line.
func RenderSVG(data ChartData) string {
	plotW := svgWidth - svgPadLeft - 20
	plotH := svgHeight - svgPadTop - svgPadBot

	xAt := func(i int) float64 {
		if len(data.Dates) <= 1 {
			return float64(svgPadLeft)
		}
		return float64(svgPadLeft) + float64(i)/float64(len(data.Dates)-1)*float64(plotW)
	}
	yAt := func(p float64) float64 {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		return float64(svgPadTop) + (1-p)*float64(plotH)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(&b, `<text x="%d" y="24" font-size="16" font-family="sans-serif">Stationarity test evolution</text>`+"\n", svgPadLeft)

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		svgPadLeft, svgPadTop, svgPadLeft, svgPadTop+plotH)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		svgPadLeft, svgPadTop+plotH, svgPadLeft+plotW, svgPadTop+plotH)
	for _, tick := range []float64{0, 0.25, 0.5, 0.75, 1} {
		y := yAt(tick)
		fmt.Fprintf(&b, `<text x="%d" y="%.0f" font-size="11" font-family="sans-serif" text-anchor="end">%.2f</text>`+"\n",
			svgPadLeft-8, y+4, tick)
	}

	// Threshold reference line
	ty := yAt(data.Threshold)
	fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="red" stroke-dasharray="6,4"/>`+"\n",
		svgPadLeft, ty, svgPadLeft+plotW, ty)
	fmt.Fprintf(&b, `<text x="%d" y="%.0f" font-size="11" font-family="sans-serif" fill="red">threshold %.2f</text>`+"\n",
		svgPadLeft+plotW-110, ty-6, data.Threshold)

	writeSeries(&b, data.ADF, xAt, yAt, "steelblue")
	writeSeries(&b, data.KPSS, xAt, yAt, "darkorange")

	// X labels on first, middle and last window start dates.
	if n := len(data.Dates); n > 0 {
		for _, i := range []int{0, n / 2, n - 1} {
			fmt.Fprintf(&b, `<text x="%.0f" y="%d" font-size="11" font-family="sans-serif" text-anchor="middle">%s</text>`+"\n",
				xAt(i), svgPadTop+plotH+20, data.Dates[i])
		}
	}

	// Legend
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" font-family="sans-serif" fill="steelblue">ADF p-value</text>`+"\n",
		svgPadLeft, svgHeight-12)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" font-family="sans-serif" fill="darkorange">KPSS p-value</text>`+"\n",
		svgPadLeft+120, svgHeight-12)

	b.WriteString("</svg>\n")
	return b.String()
}

// writeSeries draws one polyline per run of consecutive non-null points,
// plus a marker per point.
func writeSeries(b *strings.Builder, series []*float64, xAt func(int) float64, yAt func(float64) float64, color string) {
	var points []string
	flush := func() {
		if len(points) > 1 {
			fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
				strings.Join(points, " "), color)
		}
		points = points[:0]
	}
	for i, p := range series {
		if p == nil {
			flush()
			continue
		}
		x, y := xAt(i), yAt(*p)
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`+"\n", x, y, color)
	}
	flush()
}
