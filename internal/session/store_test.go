package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-admin-svc/internal/config"
	"society-admin-svc/internal/models"
)

// fakeClock is shared by the stores that take a now func
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: opens a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.SessionEntry{}))
	return db
}

// runStoreContract checks the behaviour every Store driver must share.
// expire makes every entry stored with a one hour ttl expire.
func runStoreContract(t *testing.T, store Store, expire func()) {
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		_, err := store.Get(ctx, "sid-missing", "token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-1", "token", "first", time.Hour))
		require.NoError(t, store.Set(ctx, "sid-1", "token", "second", time.Hour))
		require.NoError(t, store.Set(ctx, "sid-2", "token", "other", time.Hour))

		value, err := store.Get(ctx, "sid-1", "token")
		require.NoError(t, err)
		assert.Equal(t, "second", value)

		value, err = store.Get(ctx, "sid-2", "token")
		require.NoError(t, err)
		assert.Equal(t, "other", value)
	})

	t.Run("DeleteKeys", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-3", "token", "t", time.Hour))
		require.NoError(t, store.Set(ctx, "sid-3", "user", "u", time.Hour))
		require.NoError(t, store.Set(ctx, "sid-3", "role", "admin", time.Hour))

		require.NoError(t, store.Delete(ctx, "sid-3", "token", "user", "role"))
		for _, key := range []string{"token", "user", "role"} {
			_, err := store.Get(ctx, "sid-3", key)
			assert.ErrorIs(t, err, ErrNotFound, key)
		}
		assert.NoError(t, store.Delete(ctx, "sid-unknown", "token"))
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-4", "token", "t", time.Hour))
		expire()

		_, err := store.Get(ctx, "sid-4", "token")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.Purge(ctx)
		assert.NoError(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.now

	runStoreContract(t, store, func() { clock.advance(2 * time.Hour) })

	t.Run("PurgeCounts", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "a", "token", "1", time.Minute))
		require.NoError(t, store.Set(ctx, "a", "user", "2", time.Hour))
		clock.advance(2 * time.Minute)

		removed, err := store.Purge(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		value, err := store.Get(ctx, "a", "user")
		require.NoError(t, err)
		assert.Equal(t, "2", value)
	})
}

func TestGormStore(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	db := newTestDB(t)
	store := NewGormStore(db)
	store.now = clock.now

	runStoreContract(t, store, func() { clock.advance(2 * time.Hour) })

	t.Run("UpsertKeepsOneRow", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "row", "token", "a", time.Hour))
		require.NoError(t, store.Set(ctx, "row", "token", "b", time.Hour))

		var count int64
		require.NoError(t, db.Model(&models.SessionEntry{}).Where("session_id = ?", "row").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("PurgeRemovesRows", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "old", "token", "a", time.Minute))
		clock.advance(time.Hour)

		removed, err := store.Purge(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, removed, int64(1))

		var count int64
		require.NoError(t, db.Model(&models.SessionEntry{}).Where("session_id = ?", "old").Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "")
	runStoreContract(t, store, func() { mr.FastForward(2 * time.Hour) })

	t.Run("HashLayout", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "layout", "token", "abc", time.Minute))
		assert.Equal(t, "abc", mr.HGet(DefaultRedisPrefix+"layout", "token"))
		assert.Equal(t, time.Minute, mr.TTL(DefaultRedisPrefix+"layout"))
	})
}

func TestFileStore(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)
	store.now = clock.now

	runStoreContract(t, store, func() { clock.advance(2 * time.Hour) })

	t.Run("PersistsAcrossInstances", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "default", "token", "persisted", time.Hour))

		reopened := NewFileStore(path)
		reopened.now = clock.now
		value, err := reopened.Get(ctx, "default", "token")
		require.NoError(t, err)
		assert.Equal(t, "persisted", value)
	})
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	scoped := Bind(store, "browser-1", time.Hour)

	value, err := scoped.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, scoped.Set(ctx, "token", "abc"))
	require.NoError(t, scoped.Set(ctx, "user", "{}"))
	value, err = scoped.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, scoped.Remove(ctx, "token", "user"))
	value, err = scoped.Get(ctx, "user")
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.Equal(t, "browser-1", scoped.SessionID())
}

func TestOpen(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := Open(&config.Config{Session: config.SessionConfig{Driver: config.SessionDriverMemory}}, nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("PostgresNeedsDB", func(t *testing.T) {
		_, _, err := Open(&config.Config{Session: config.SessionConfig{Driver: config.SessionDriverPostgres}}, nil)
		assert.Error(t, err)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, closeFn, err := Open(&config.Config{
			Session: config.SessionConfig{Driver: config.SessionDriverRedis},
			Redis:   config.RedisConfig{Addr: mr.Addr()},
		}, nil)
		require.NoError(t, err)
		assert.IsType(t, &RedisStore{}, store)
		assert.NoError(t, closeFn())
	})
}
