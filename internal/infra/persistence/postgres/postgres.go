package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"eshop/config"
	"eshop/internal/domain/lifecycle"
	"eshop/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store shared by every repository. The connection is verified
// on fx start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-step writes (order create/delete) use TransactionManager
	// explicitly, so single statements run without an implicit transaction.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			params.Logger.Info("Connected to postgres", slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections))

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// watchPool reports callers that had to wait for a free connection since the
// previous tick. Long waits are warnings.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := sqlDB.Stats()
		waits := now.WaitCount - last.WaitCount
		waited := now.WaitDuration - last.WaitDuration
		last = now

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Connection pool contention",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", now.InUse),
			slog.Int("idle", now.Idle),
			slog.Int("maxOpen", now.MaxOpenConnections),
		)
	}
}
