package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// Waits averaging above this are reported at warn level.
const poolWaitWarnThreshold = 50 * time.Millisecond

// poolMonitor logs when requests had to wait for a free connection.
type poolMonitor struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	interval time.Duration
	prev     sql.DBStats
}

func newPoolMonitor(db *sql.DB, logger *slog.Logger, interval time.Duration) *poolMonitor {
	return &poolMonitor{stats: db.Stats, logger: logger, interval: interval}
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check compares the pool against the previous sample and logs new waits.
func (m *poolMonitor) check(ctx context.Context) {
	cur := m.stats()
	defer func() { m.prev = cur }()

	waits := cur.WaitCount - m.prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - m.prev.WaitDuration
	avg := waited / time.Duration(waits)

	level := slog.LevelDebug
	if avg >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres connection pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", avg),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
