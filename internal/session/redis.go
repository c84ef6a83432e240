package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 5

// RedisStore keeps every list as a JSON array under its own key with a
// sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *RedisStore) IDs(ctx context.Context, sid, key string) ([]int, error) {
	ids, err := load(ctx, s.rdb, storeKey(sid, key))
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", key, err)
	}

	return ids, nil
}

// Update runs fn inside WATCH/MULTI and retries when the key changed underneath.
func (s *RedisStore) Update(ctx context.Context, sid, key string, fn func([]int) []int) ([]int, error) {
	k := storeKey(sid, key)

	var result []int
	txf := func(tx *redis.Tx) error {
		ids, err := load(ctx, tx, k)
		if err != nil {
			return err
		}

		result = fn(ids)
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, s.ttl)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := s.rdb.Watch(ctx, txf, k)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("update session %s: %w", key, err)
	}

	return nil, fmt.Errorf("update session %s: %w", key, ErrConflict)
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, c getter, key string) ([]int, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []int{}, nil
	} else if err != nil {
		return nil, err
	}

	ids := []int{}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}

	return ids, nil
}
