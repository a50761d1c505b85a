package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/observability"
	"github.com/matzehuels/resizable/pkg/unit"
)

const (
	redisBackend = "redis"

	// DefaultRedisPrefix namespaces every key the redis backend writes.
	DefaultRedisPrefix = "resizable:size:"

	// clearBatch is the SCAN page size used by Clear.
	clearBatch = 256
)

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// Prefix is prepended to every key. Empty means DefaultRedisPrefix.
	Prefix string

	// TTL expires saved sizes. Zero keeps them forever.
	TTL time.Duration
}

// RedisStore keeps one JSON string per key in redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to redis and checks the connection with PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if err := errors.ValidateRedisAddr(cfg.Addr); err != nil {
		return nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis at %s", cfg.Addr)
	}
	return NewRedisStoreFromClient(client, cfg.Prefix, cfg.TTL), nil
}

// NewRedisStoreFromClient wraps an existing client. The store takes
// ownership: Close closes the client.
func NewRedisStoreFromClient(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Load reads the size saved under key.
func (s *RedisStore) Load(ctx context.Context, key string) (unit.Size, bool, error) {
	if err := errors.ValidateKey(key); err != nil {
		return unit.Size{}, false, err
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		observability.Store().OnStoreMiss(ctx, redisBackend)
		return unit.Size{}, false, nil
	}
	if err != nil {
		return unit.Size{}, false, errors.Wrap(errors.ErrCodeNetwork, err, "load %s", key)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		observability.Store().OnStoreMiss(ctx, redisBackend)
		return unit.Size{}, false, nil
	}
	observability.Store().OnStoreHit(ctx, redisBackend)
	return e.Size, true, nil
}

// Save writes size under key, with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, key string, size unit.Size) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	data, err := json.Marshal(entry{Key: key, Size: size, SavedAt: time.Now().UTC()})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal store entry")
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "save %s", key)
	}
	observability.Store().OnStoreSet(ctx, redisBackend, len(data))
	return nil
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := errors.ValidateKey(key); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "delete %s", key)
	}
	return nil
}

// Clear deletes every key under the store's prefix.
func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", clearBatch).Result()
		if err != nil {
			return errors.Wrap(errors.ErrCodeNetwork, err, "scan %s*", s.prefix)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(errors.ErrCodeNetwork, err, "clear %s*", s.prefix)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
