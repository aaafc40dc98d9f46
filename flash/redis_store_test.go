package flash_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/flash"
)

func TestNewRedisStore_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil client", func(t *testing.T) {
		t.Parallel()
		_, err := flash.NewRedisStore(nil, flash.StaticToken("t"))
		assert.ErrorIs(t, err, flash.ErrNoClient)
	})

	t.Run("nil token func", func(t *testing.T) {
		t.Parallel()
		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		t.Cleanup(func() { _ = client.Close() })
		_, err := flash.NewRedisStore(client, nil)
		assert.ErrorIs(t, err, flash.ErrNoToken)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		t.Cleanup(func() { _ = client.Close() })
		store, err := flash.NewRedisStore(client, flash.CookieToken("sid"), flash.WithBatchTTL(time.Minute))
		require.NoError(t, err)
		assert.NotNil(t, store)
	})
}

func TestConnectRedis_BadURL(t *testing.T) {
	t.Parallel()

	cfg := flash.DefaultRedisConfig()
	cfg.ConnectionURL = "not-a-redis-url"

	_, err := flash.ConnectRedis(context.Background(), cfg)
	assert.ErrorIs(t, err, flash.ErrRedisConnString)
}

func TestDefaultRedisConfig(t *testing.T) {
	t.Parallel()

	cfg := flash.DefaultRedisConfig()
	assert.Equal(t, "redis://localhost:6379/0", cfg.ConnectionURL)
	assert.Equal(t, 10*time.Minute, cfg.BatchTTL)
	assert.Equal(t, 3, cfg.RetryAttempts)
}
