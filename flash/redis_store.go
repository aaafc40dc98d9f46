package flash

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/notifykit/notify"
)

// defaultBatchTTL caps how long an unconsumed batch lingers server-side when
// the follow-up request never arrives.
const defaultBatchTTL = 10 * time.Minute

// RedisStore keeps the carried batch server-side, keyed by a per-user token
// (typically the session ID). Only an opaque token travels to the client,
// which keeps the cookie small and the payload off the wire.
type RedisStore struct {
	client *redis.Client
	token  TokenFunc
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithBatchTTL overrides how long an unconsumed batch is retained.
func WithBatchTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisStore creates a redis-backed flash store.
func NewRedisStore(client *redis.Client, token TokenFunc, opts ...RedisOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	if token == nil {
		return nil, ErrNoToken
	}

	s := &RedisStore{
		client: client,
		token:  token,
		ttl:    defaultBatchTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Put stores the batch under the user's slot, replacing any prior batch.
func (s *RedisStore) Put(ctx context.Context, _ http.ResponseWriter, r *http.Request, batch []notify.Message) error {
	token, err := s.token(r)
	if err != nil {
		return err
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, slotKey(token), data, s.ttl).Err()
}

// Take reads and clears the batch in one round trip via GETDEL. Concurrent
// takers race last-write-wins, consistent with the Store contract.
func (s *RedisStore) Take(ctx context.Context, _ http.ResponseWriter, r *http.Request) ([]notify.Message, error) {
	token, err := s.token(r)
	if err != nil {
		return nil, err
	}

	data, err := s.client.GetDel(ctx, slotKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	var batch []notify.Message
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	return batch, nil
}

func slotKey(token string) string {
	return SlotKey + ":" + token
}

// ConnectRedis establishes a redis connection using the provided
// configuration, retrying per RetryAttempts/RetryInterval.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)

		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		default:
			time.Sleep(cfg.RetryInterval)
		}
	}

	return nil, ErrRedisNotReady
}

// NewRedisStoreFromConfig connects to redis and builds a store in one step.
func NewRedisStoreFromConfig(ctx context.Context, cfg RedisConfig, token TokenFunc) (*RedisStore, error) {
	client, err := ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisStore(client, token, WithBatchTTL(cfg.BatchTTL))
}
