package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/config"
	"github.com/mrlokans/readingclub/internal/entities"
)

// setupTestDB creates a fresh gateway over a temporary sqlite file
func setupTestDB(t *testing.T) (*Gateway, func()) {
	t.Helper()
	gw := NewGateway()
	err := gw.Initialize(config.Database{
		Driver:       config.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: config.DefaultMaxOpenConns,
		LogLevel:     "silent",
	})
	require.NoError(t, err)

	cleanup := func() {
		gw.Close()
	}
	return gw, cleanup
}

func TestGateway_AcquireBeforeInitialize(t *testing.T) {
	gw := NewGateway()

	called := false
	err := gw.Acquire(context.Background(), func(db *gorm.DB) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, called)
	assert.ErrorIs(t, gw.Ping(context.Background()), ErrNotInitialized)
}

func TestGateway_InitializeMigratesSchema(t *testing.T) {
	gw, cleanup := setupTestDB(t)
	defer cleanup()

	err := gw.Acquire(context.Background(), func(db *gorm.DB) error {
		for _, table := range []string{"readers", "books", "authors", "author_book"} {
			if !db.Migrator().HasTable(table) {
				return errors.New("missing table " + table)
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, gw.Ping(context.Background()))
}

func TestGateway_AcquirePropagatesCallbackError(t *testing.T) {
	gw, cleanup := setupTestDB(t)
	defer cleanup()

	boom := errors.New("boom")
	err := gw.Acquire(context.Background(), func(db *gorm.DB) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The connection went back to the pool, so the next unit of work runs.
	err = gw.Acquire(context.Background(), func(db *gorm.DB) error {
		return db.Create(&entities.Reader{Name: "Ivan", Phone: "71111111111"}).Error
	})
	assert.NoError(t, err)
}

func TestGateway_ForeignKeysEnforced(t *testing.T) {
	gw, cleanup := setupTestDB(t)
	defer cleanup()

	err := gw.Acquire(context.Background(), func(db *gorm.DB) error {
		return db.Create(&entities.Book{Title: "Orphan", InventoryNumber: 1, ReaderID: 42}).Error
	})
	assert.Error(t, err)
}

func TestGateway_ReinitializeReplacesPool(t *testing.T) {
	gw, cleanup := setupTestDB(t)
	defer cleanup()

	err := gw.Initialize(config.Database{
		Driver:   config.DriverSQLite,
		URL:      filepath.Join(t.TempDir(), "other.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	assert.NoError(t, gw.Ping(context.Background()))
}

func TestGateway_CloseIsIdempotent(t *testing.T) {
	gw, _ := setupTestDB(t)

	require.NoError(t, gw.Close())
	assert.NoError(t, gw.Close())
	assert.ErrorIs(t, gw.Ping(context.Background()), ErrNotInitialized)
}

func TestGateway_UnsupportedDriver(t *testing.T) {
	gw := NewGateway()
	err := gw.Initialize(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))
	assert.Same(t, ErrNotInitialized, Wrap("op", ErrNotInitialized))

	cause := errors.New("UNIQUE constraint failed: readers.phone")
	err := Wrap("save reader", cause)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())

	// Already wrapped errors keep their original operation.
	again := Wrap("update reader", err)
	var pe *PersistenceError
	require.True(t, errors.As(again, &pe))
	assert.Equal(t, "save reader", pe.Op)
}

func TestPostgresDSN(t *testing.T) {
	dsn, err := postgresDSN(config.Database{URL: "postgres://db:5432/club"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://db:5432/club", dsn)

	dsn, err = postgresDSN(config.Database{URL: "postgres://db:5432/club", Username: "club", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://club:secret@db:5432/club", dsn)

	dsn, err = postgresDSN(config.Database{URL: "host=db dbname=club", Username: "club", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "host=db dbname=club user=club password=secret", dsn)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "club.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("club.db"))
	assert.Equal(t, "club.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("club.db?cache=shared"))
}
