package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"GoldSentinel/internal/barcache"
	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/scheduler"
	"GoldSentinel/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	log.Info().Str("symbol", cfg.Market.Symbol).Str("interval", cfg.Market.Interval).
		Str("period", cfg.Market.Period).Int("window_days", cfg.Market.WindowDays).
		Msg("GoldSentinel starting")

	// Init fetcher
	fetcher := collector.NewYahooFetcher(collector.YahooOptions{
		Timeout:  cfg.Fetch.Timeout,
		ProxyURL: cfg.Fetch.Proxy,
	})
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	// Init bar cache
	var cache barcache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := barcache.NewSQLiteCache(cfg.Cache.SQLitePath, cfg.Cache.TTL)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite cache failed, caching disabled")
			cache = barcache.NewNoopCache()
		} else {
			cache = sc
			defer sc.Close()
		}
	} else {
		cache = barcache.NewNoopCache()
	}

	col := collector.New(fetcher, cache)

	// Init scheduler
	sched := scheduler.New(col, cfg)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register refresh task")
	}
	sched.Start()
	defer sched.Stop()

	// Initial run so the dashboard has data on first load. A provider outage
	// is reported and the server still starts; the next refresh may succeed.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := sched.Refresh(ctx); err != nil {
		if errors.Is(err, collector.ErrNoData) {
			log.Error().Err(err).Msg("could not download gold data, try again later")
		} else {
			log.Error().Err(err).Msg("initial analysis failed")
		}
	}
	cancel()

	// Init HTTP dashboard
	srv := &http.Server{
		Addr:    cfg.HTTP.Listen,
		Handler: server.New(sched).Router(),
	}
	go func() {
		log.Info().Str("listen", cfg.HTTP.Listen).Msg("dashboard listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("GoldSentinel stopped")
}
