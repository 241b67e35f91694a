package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
)

// DefaultKeyPrefix namespaces session keys in Redis.
const DefaultKeyPrefix = "autoframe:session:"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	// URL is a redis:// or rediss:// URL, e.g. "redis://localhost:6379/0".
	URL string

	// KeyPrefix defaults to DefaultKeyPrefix.
	KeyPrefix string

	// Runner and Logger are handed to every restored session.
	Runner *pipeline.Runner
	Logger *log.Logger
}

// RedisStore keeps session snapshots in Redis so that several servers can
// share them. Keys expire with the session, so Cleanup has nothing to do.
//
// Two servers handling messages for the same session at once race: the
// last Set wins.
type RedisStore struct {
	client *redis.Client
	prefix string
	runner *pipeline.Runner
	logger *log.Logger
}

// NewRedisStore connects to Redis and checks the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", opts.Addr, err)
	}
	return newRedisStore(client, cfg), nil
}

func newRedisStore(client *redis.Client, cfg RedisConfig) *RedisStore {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, runner: cfg.Runner, logger: cfg.Logger}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return decodeSnapshot(data, s.runner, s.logger)
}

func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	snap := sess.Snapshot()
	ttl := time.Until(snap.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.ID, err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// Cleanup is a no-op: Redis expires session keys itself.
func (s *RedisStore) Cleanup(ctx context.Context) error {
	return nil
}

// Close closes the Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// decodeSnapshot restores a session stored by Set. Expired snapshots that
// outlived their key's TTL read as missing.
func decodeSnapshot(data []byte, runner *pipeline.Runner, logger *log.Logger) (*Session, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode session")
	}
	sess, err := Restore(snap, runner, logger)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		return nil, nil
	}
	return sess, nil
}

var _ Store = (*RedisStore)(nil)
