package postgres

import (
	"context"
	"log/slog"
	"time"

	"artisanconnect/config"
	"artisanconnect/internal/domain/lifecycle"
	"artisanconnect/internal/errors"
	"artisanconnect/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultPoolMonitorInterval = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any read replicas) through go-lib, pings on
// start, migrates the marketplace schema when enabled and watches the pool.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required unless demo mode is enabled")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes use txManager.Execute; single statements run without an implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger, poolMonitorInterval(cfg))
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrate(ctx, db, cfg, params.Logger); err != nil {
				return err
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database == nil || !cfg.Database.AutoMigrate {
		return nil
	}

	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}
	logger.Info("PostgreSQL schema migrated", slog.Int("tables", len(models)))

	return nil
}

func poolMonitorInterval(cfg *config.Config) time.Duration {
	if cfg.Database != nil && cfg.Database.PoolMonitorInterval > 0 {
		return cfg.Database.PoolMonitorInterval
	}

	return defaultPoolMonitorInterval
}
