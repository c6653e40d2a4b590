package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.URL)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Database.MaxOpenConns)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/readingclub")
	t.Setenv("DATABASE_USERNAME", "club")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "3")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost:5432/readingclub", cfg.Database.URL)
	assert.Equal(t, "club", cfg.Database.Username)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
}
