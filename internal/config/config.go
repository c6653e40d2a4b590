package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // Local file database (default)
	DriverPostgres Driver = "postgres" // PostgreSQL via pgx
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Driver       Driver
		URL          string // File path for sqlite, DSN or postgres:// URL for postgres
		Username     string
		Password     string
		MaxOpenConns int    // Pool size, the store is never hit by more than this many statements at once
		LogLevel     string // gorm logger level: silent, error, warn, info
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables win.
func NewConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment overrides from .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_url", DefaultDatabasePath)
	v.SetDefault("database_username", "")
	v.SetDefault("database_password", "")
	v.SetDefault("database_max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database_log_level", "warn")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:       Driver(v.GetString("DATABASE_DRIVER")),
			URL:          v.GetString("DATABASE_URL"),
			Username:     v.GetString("DATABASE_USERNAME"),
			Password:     v.GetString("DATABASE_PASSWORD"),
			MaxOpenConns: v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			LogLevel:     v.GetString("DATABASE_LOG_LEVEL"),
		},
	}
}
