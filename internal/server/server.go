// Package server exposes the analysis snapshot over a local HTTP dashboard.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/model"
)

// RunSource provides the latest analysis snapshot and on-demand refresh.
type RunSource interface {
	Latest() *model.AnalysisRun
	Refresh(ctx context.Context) (*model.AnalysisRun, error)
}

// Server serves the dashboard API.
type Server struct {
	source RunSource
	logger zerolog.Logger
}

// New creates a Server over the given snapshot source.
func New(source RunSource) *Server {
	return &Server{
		source: source,
		logger: log.With().Str("component", "server").Logger(),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.getHealth)
	r.Get("/chart.svg", s.getChartSVG)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/bars", s.getBars)
		r.Get("/results", s.getResults)
		r.Get("/summary", s.getSummary)
		r.Get("/chart", s.getChart)
		r.Post("/refresh", s.postRefresh)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type barResponse struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type barsResponse struct {
	Symbol    string        `json:"symbol"`
	Interval  string        `json:"interval"`
	Period    string        `json:"period"`
	FetchedAt string        `json:"fetched_at"`
	Bars      []barResponse `json:"bars"`
}

type windowResultResponse struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	ADFStat    float64  `json:"adf_statistic"`
	ADFPValue  float64  `json:"adf_p_value"`
	KPSSPValue *float64 `json:"kpss_p_value"`
	KPSSNote   string   `json:"kpss_note,omitempty"`
	Hurst      *float64 `json:"hurst_exponent"`
	HurstNote  string   `json:"hurst_note,omitempty"`
	Volatility *float64 `json:"volatility"`
}

type summaryResponse struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	Windows     int      `json:"windows"`
	PctADF      *float64 `json:"pct_adf_stationary"`
	PctKPSS     *float64 `json:"pct_kpss_stationary"`
	PctHurst    *float64 `json:"pct_hurst_stationary"`
	Report      string   `json:"report"`
}

// latestOr503 fetches the current snapshot or writes a 503 when none exists.
func (s *Server) latestOr503(w http.ResponseWriter, r *http.Request) *model.AnalysisRun {
	run := s.source.Latest()
	if run == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, errorResponse{Error: "no analysis available yet"})
		return nil
	}
	return run
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) getBars(w http.ResponseWriter, r *http.Request) {
	run := s.latestOr503(w, r)
	if run == nil {
		return
	}
	resp := barsResponse{
		Symbol:    run.Series.Symbol,
		Interval:  run.Series.Interval,
		Period:    run.Series.Period,
		FetchedAt: run.Series.FetchedAt.Format("2006-01-02T15:04:05Z07:00"),
		Bars:      make([]barResponse, 0, len(run.Series.Bars)),
	}
	for _, b := range run.Series.Bars {
		resp.Bars = append(resp.Bars, barResponse{
			Time:   b.Time.Format("2006-01-02T15:04:05Z07:00"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	render.JSON(w, r, resp)
}

func (s *Server) getResults(w http.ResponseWriter, r *http.Request) {
	run := s.latestOr503(w, r)
	if run == nil {
		return
	}
	rows := make([]windowResultResponse, 0, len(run.Results))
	for _, res := range run.Results {
		rows = append(rows, windowResultResponse{
			Start:      res.Start,
			End:        res.End,
			ADFStat:    res.ADFStat,
			ADFPValue:  res.ADFPValue,
			KPSSPValue: res.KPSS.Ptr(),
			KPSSNote:   res.KPSS.Reason,
			Hurst:      res.Hurst.Ptr(),
			HurstNote:  res.Hurst.Reason,
			Volatility: res.Volatility.Ptr(),
		})
	}
	render.JSON(w, r, rows)
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	run := s.latestOr503(w, r)
	if run == nil {
		return
	}
	resp := summaryResponse{
		RunID:       run.RunID,
		GeneratedAt: run.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Report:      run.Report,
	}
	if run.Summary != nil {
		resp.Windows = run.Summary.Windows
		resp.PctADF = f64ptr(run.Summary.PctADF)
		resp.PctKPSS = f64ptr(run.Summary.PctKPSS)
		resp.PctHurst = f64ptr(run.Summary.PctHurst)
	}
	render.JSON(w, r, resp)
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	run := s.latestOr503(w, r)
	if run == nil {
		return
	}
	render.JSON(w, r, BuildChartData(run.Results))
}

func (s *Server) getChartSVG(w http.ResponseWriter, r *http.Request) {
	run := s.source.Latest()
	if run == nil {
		http.Error(w, "no analysis available yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(RenderSVG(BuildChartData(run.Results))))
}

func (s *Server) postRefresh(w http.ResponseWriter, r *http.Request) {
	run, err := s.source.Refresh(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, collector.ErrNoData) {
			status = http.StatusServiceUnavailable
		}
		s.logger.Error().Err(err).Msg("manual refresh failed")
		render.Status(r, status)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}
	render.JSON(w, r, map[string]string{"run_id": run.RunID})
}

func f64ptr(v float64) *float64 { return &v }
