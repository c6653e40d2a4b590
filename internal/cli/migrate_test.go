package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readingclub/internal/config"
)

func TestMigrateCommand_ParseFlags(t *testing.T) {
	cmd := NewMigrateCommand(config.Database{Driver: config.DriverSQLite, URL: config.DefaultDatabasePath})

	err := cmd.ParseFlags([]string{"-db", "club.db"})
	require.NoError(t, err)
	assert.Equal(t, "club.db", cmd.Database.URL)
	assert.Equal(t, config.DriverSQLite, cmd.Database.Driver)

	err = cmd.ParseFlags([]string{"-driver", "postgres", "-db", "host=db dbname=club"})
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cmd.Database.Driver)
}

func TestMigrateCommand_ParseFlags_MissingDB(t *testing.T) {
	cmd := NewMigrateCommand(config.Database{Driver: config.DriverSQLite})

	err := cmd.ParseFlags(nil)
	assert.Error(t, err)
}

func TestMigrateCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	cmd := NewMigrateCommand(config.Database{Driver: config.DriverSQLite, LogLevel: "silent"})
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath}))

	assert.NoError(t, cmd.Run())
	// Running again against an existing schema is a no-op.
	assert.NoError(t, cmd.Run())
}

func TestMigrateCommand_Run_UnsupportedDriver(t *testing.T) {
	cmd := NewMigrateCommand(config.Database{Driver: "oracle", URL: "x"})

	assert.Error(t, cmd.Run())
}
