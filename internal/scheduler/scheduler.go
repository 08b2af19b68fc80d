// Package scheduler owns the periodic pipeline refresh and the latest
// analysis snapshot served by the dashboard.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"GoldSentinel/internal/analyzer"
	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/report"
)

// Scheduler runs the fetch-and-analyze pipeline on a cron and swaps the
// resulting snapshot atomically.
type Scheduler struct {
	cron      *cron.Cron
	collector *collector.Collector
	cfg       *config.Config
	logger    zerolog.Logger

	mu     sync.RWMutex
	latest *model.AnalysisRun
}

// New creates a Scheduler.
func New(col *collector.Collector, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		collector: col,
		cfg:       cfg,
		logger:    log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the refresh task under the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}

// Latest returns the most recent analysis run, or nil before the first
// successful refresh.
func (s *Scheduler) Latest() *model.AnalysisRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Refresh executes the full pipeline once: fetch, segment, evaluate,
// summarize. On success the snapshot is replaced; on failure the previous
// snapshot stays in place.
func (s *Scheduler) Refresh(ctx context.Context) (*model.AnalysisRun, error) {
	m := s.cfg.Market

	series, err := s.collector.Collect(ctx, m.Symbol, m.Interval, m.Period)
	if err != nil {
		return nil, err
	}

	results, err := analyzer.Analyze(series, m.WindowDays)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", m.Symbol, err)
	}
	summary := analyzer.Summarize(results)

	run := &model.AnalysisRun{
		RunID:       uuid.NewString(),
		Series:      series,
		Results:     results,
		Summary:     summary,
		Report:      report.FormatSummary(summary),
		GeneratedAt: time.Now(),
	}

	s.mu.Lock()
	s.latest = run
	s.mu.Unlock()

	ev := s.logger.Info().Str("run_id", run.RunID).
		Int("bars", len(series.Bars)).Int("windows", len(results))
	if summary != nil {
		ev = ev.Float64("pct_adf", summary.PctADF).
			Float64("pct_kpss", summary.PctKPSS).
			Float64("pct_hurst", summary.PctHurst)
	}
	ev.Msg("analysis refreshed")
	return run, nil
}

func (s *Scheduler) refreshTask() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Error().Err(err).Msg("scheduled refresh failed")
	}
}
