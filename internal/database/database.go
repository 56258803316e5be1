package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"starwars/internal/domain"
)

// Connect opens the storage context. postgres:// URLs go to PostgreSQL,
// anything else is treated as a SQLite path (":memory:" included).
func Connect(dsn string, logger *log.Logger) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty dsn", domain.ErrNotConfigured)
	}

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	if isPostgres(dsn) {
		logger.Info("connecting to PostgreSQL")
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return closeOnError(db, fmt.Errorf("%w: %v", domain.ErrNotConfigured, err))
		}
		return closeOnError(db, ping(db))
	}

	logger.Info("using SQLite", "dsn", dsn)
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return closeOnError(db, fmt.Errorf("%w: %v", domain.ErrNotConfigured, err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return closeOnError(db, fmt.Errorf("%w: %v", domain.ErrNotConfigured, err))
	}
	// One connection keeps ":memory:" databases alive and lets the
	// foreign_keys pragma (per-connection in SQLite) stick.
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return closeOnError(db, fmt.Errorf("%w: enable foreign keys: %v", domain.ErrNotConfigured, err))
	}

	return closeOnError(db, ping(db))
}

// closeOnError releases db when err is set so a failed Connect leaks no pool.
func closeOnError(db *gorm.DB, err error) (*gorm.DB, error) {
	if err == nil {
		return db, nil
	}
	if db != nil {
		_ = Close(db)
	}
	return nil, err
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func ping(db *gorm.DB) error {
	return Ping(context.Background(), db)
}

// Ping reports an unreachable store as domain.ErrNotConfigured.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotConfigured, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotConfigured, err)
	}
	return nil
}
