package quiz

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRecentStore keeps one set of fingerprints per session. The whole
// set expires ttl after the last question served.
type RedisRecentStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ RecentStore = (*RedisRecentStore)(nil)

func NewRedisRecentStore(client *redis.Client, ttl time.Duration) *RedisRecentStore {
	if ttl <= 0 {
		ttl = defaultRecentTTL
	}
	return &RedisRecentStore{client: client, ttl: ttl}
}

func (s *RedisRecentStore) key(sessionID string) string {
	return "qcm:recent:" + sessionID
}

func (s *RedisRecentStore) Seen(ctx context.Context, sessionID, fingerprint string) (bool, error) {
	seen, err := s.client.SIsMember(ctx, s.key(sessionID), fingerprint).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return seen, nil
}

func (s *RedisRecentStore) Remember(ctx context.Context, sessionID, fingerprint string) error {
	key := s.key(sessionID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, fingerprint)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}
