package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options configures a database connection
type Options struct {
	Driver string
	URL    string
	// Handler receives GORM's SQL log; nil silences it
	Handler slog.Handler
	Debug   bool
}

// Open sets up the GORM database connection for the configured driver
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres, "":
		if opts.URL == "" {
			return nil, fmt.Errorf("database URL cannot be empty")
		}
		dialector = postgres.Open(opts.URL)
	case DriverSQLite:
		url := opts.URL
		if url == "" {
			url = ":memory:"
		}
		dialector = sqlite.Open(url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	// Configure GORM logger
	gormLogger := logger.Discard
	if opts.Handler != nil {
		level := logger.Warn
		if opts.Debug {
			level = logger.Info
		}
		gormLogger = logger.New(
			slog.NewLogLogger(opts.Handler, slog.LevelDebug),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				ParameterizedQueries:      true,
				Colorful:                  false,
			},
		)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", opts.Driver, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	if opts.Driver == DriverSQLite {
		// an in-memory database lives as long as its single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
