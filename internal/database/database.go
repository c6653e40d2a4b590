package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readingclub/internal/config"
)

// Gateway owns the connection pool. Repositories never hold a *gorm.DB of
// their own; every unit of work borrows one pooled connection via Acquire.
type Gateway struct {
	mu sync.RWMutex
	db *gorm.DB
}

func NewGateway() *Gateway {
	return &Gateway{}
}

// Initialize opens the pool described by cfg and migrates the schema.
// Calling it again replaces the previous pool.
func (g *Gateway) Initialize(cfg config.Database) error {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	poolSize := cfg.MaxOpenConns
	if poolSize <= 0 {
		poolSize = config.DefaultMaxOpenConns
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)

	if err := migrate(db); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	g.mu.Lock()
	previous := g.db
	g.db = db
	g.mu.Unlock()

	if previous != nil {
		if err := closePool(previous); err != nil {
			log.Printf("Warning: failed to close previous connection pool: %v", err)
		}
	}

	log.Printf("Database initialized successfully (%s, pool size %d)", cfg.Driver, poolSize)
	return nil
}

// Acquire runs fn on a single pooled connection and releases it afterwards,
// whether fn succeeds or not. It fails with ErrNotInitialized before
// Initialize has been called.
func (g *Gateway) Acquire(ctx context.Context, fn func(db *gorm.DB) error) error {
	g.mu.RLock()
	db := g.db
	g.mu.RUnlock()

	if db == nil {
		return ErrNotInitialized
	}
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// NewDB so each chain inside fn starts from a clean statement
		// while staying on the borrowed connection.
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
}

func (g *Gateway) Ping(ctx context.Context) error {
	g.mu.RLock()
	db := g.db
	g.mu.RUnlock()

	if db == nil {
		return ErrNotInitialized
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gateway) Close() error {
	g.mu.Lock()
	db := g.db
	g.db = nil
	g.mu.Unlock()

	if db == nil {
		return nil
	}
	return closePool(db)
}

func closePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(sqliteDSN(cfg.URL)), nil
	case config.DriverPostgres:
		dsn, err := postgresDSN(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which go-sqlite3 leaves off
// per connection unless asked.
func sqliteDSN(path string) string {
	if path == "" {
		path = config.DefaultDatabasePath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func postgresDSN(cfg config.Database) (string, error) {
	if cfg.Username == "" {
		return cfg.URL, nil
	}

	if strings.HasPrefix(cfg.URL, "postgres://") || strings.HasPrefix(cfg.URL, "postgresql://") {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid database URL: %w", err)
		}
		u.User = url.UserPassword(cfg.Username, cfg.Password)
		return u.String(), nil
	}

	dsn := strings.TrimSpace(cfg.URL) + " user=" + cfg.Username
	if cfg.Password != "" {
		dsn += " password=" + cfg.Password
	}
	return strings.TrimSpace(dsn), nil
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
