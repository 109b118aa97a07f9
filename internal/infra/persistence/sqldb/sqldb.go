// Package sqldb contains the concrete implementation of the persistence
// layer using GORM. The default driver is SQLite; Postgres and MySQL share
// the same repositories and only differ in the dialector.
package sqldb

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"isdn/config"
	"isdn/internal/domain/lifecycle"
	"isdn/internal/errors"
	"isdn/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the database client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config.Database, params.Logger, params.Config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	applyPoolSettings(sqlDB, params.Config.Database)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if params.Config.Database.Seed {
		if err := Seed(db, params.Config); err != nil {
			return nil, err
		}
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(dbCfg *config.DatabaseConfig, baseLogger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case "postgres":
		dialector = postgres.Open(dbCfg.DSN)
	case "mysql":
		dialector = mysql.Open(dbCfg.DSN)
	default:
		dialector = sqlite.Open(dbCfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(baseLogger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", dbCfg.Driver)
	}

	return db, nil
}

// applyPoolSettings configures the connection pool. SQLite is capped at a
// single connection so concurrent writers serialize instead of hitting
// SQLITE_BUSY.
func applyPoolSettings(sqlDB *sql.DB, dbCfg *config.DatabaseConfig) {
	maxOpen := dbCfg.MaxOpenConns
	if dbCfg.Driver == "" || dbCfg.Driver == "sqlite" {
		maxOpen = 1
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}
}

// Migrate creates or updates the schema for all persistence models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.InventoryModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.DeliveryModel{},
		&model.InvoiceModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "DB pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "DB pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
