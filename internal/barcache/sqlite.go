package barcache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"GoldSentinel/internal/model"
)

// SQLiteCache stores fetched bars in a SQLite database with a freshness TTL.
type SQLiteCache struct {
	db     *sql.DB
	ttl    time.Duration
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewSQLiteCache opens (or creates) the database and runs migrations.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{
		db:     db,
		ttl:    ttl,
		logger: log.With().Str("component", "barcache").Logger(),
	}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	c.logger.Info().Str("path", dbPath).Dur("ttl", ttl).Msg("sqlite bar cache opened")
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			symbol     TEXT NOT NULL,
			interval   TEXT NOT NULL,
			period     TEXT NOT NULL,
			bar_time   INTEGER NOT NULL,
			open       REAL,
			high       REAL,
			low        REAL,
			close      REAL,
			volume     REAL,
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_key ON bars(symbol, interval, period, bar_time)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Get returns the cached bars if an entry newer than the TTL exists.
func (c *SQLiteCache) Get(symbol, interval, period string) ([]model.Bar, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl).Unix()
	rows, err := c.db.Query(`SELECT bar_time, open, high, low, close, volume FROM bars
		WHERE symbol = ? AND interval = ? AND period = ? AND fetched_at > ?
		ORDER BY bar_time`, symbol, interval, period, cutoff)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache read failed")
		return nil, false
	}
	defer rows.Close()

	var bars []model.Bar
	for rows.Next() {
		var ts int64
		var b model.Bar
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			c.logger.Warn().Err(err).Msg("cache scan failed")
			return nil, false
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil || len(bars) == 0 {
		return nil, false
	}
	return bars, true
}

// Put replaces the cached bars for the key.
func (c *SQLiteCache) Put(symbol, interval, period string, bars []model.Bar) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM bars WHERE symbol = ? AND interval = ? AND period = ?`,
		symbol, interval, period); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear stale bars: %w", err)
	}

	now := time.Now().Unix()
	stmt, err := tx.Prepare(`INSERT INTO bars
		(symbol, interval, period, bar_time, open, high, low, close, volume, fetched_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.Exec(symbol, interval, period, b.Time.Unix(),
			b.Open, b.High, b.Low, b.Close, b.Volume, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert bar: %w", err)
		}
	}
	return tx.Commit()
}

func (c *SQLiteCache) Close() error {
	c.logger.Info().Msg("closing sqlite bar cache")
	return c.db.Close()
}
