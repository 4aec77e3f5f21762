package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLiteBackend(t *testing.T) *GormBackend {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormBackend(db)
}

func TestGormBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := setupSQLiteBackend(t)

	_, err := backend.Get(ctx, "k1", KeyRecipes)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Set(ctx, "k1", KeyRecipes, `[]`))
	require.NoError(t, backend.Set(ctx, "k1", KeyRecipes, `[{"id":"a"}]`))

	value, err := backend.Get(ctx, "k1", KeyRecipes)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, value)

	var count int64
	require.NoError(t, backend.db.Model(&Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "second write upserts the same row")
}

func TestGormBackendNamespaces(t *testing.T) {
	ctx := context.Background()
	backend := setupSQLiteBackend(t)

	require.NoError(t, backend.Set(ctx, "k1", KeyTheme, "dark"))
	require.NoError(t, backend.Set(ctx, "k2", KeyTheme, "light"))

	v1, err := backend.Get(ctx, "k1", KeyTheme)
	require.NoError(t, err)
	v2, err := backend.Get(ctx, "k2", KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v1)
	assert.Equal(t, "light", v2)

	require.NoError(t, backend.Delete(ctx, "k1", KeyTheme))
	_, err = backend.Get(ctx, "k1", KeyTheme)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = backend.Get(ctx, "k2", KeyTheme)
	assert.NoError(t, err)
}

func TestGormBackendPing(t *testing.T) {
	backend := setupSQLiteBackend(t)
	assert.NoError(t, backend.Ping(context.Background()))
}
