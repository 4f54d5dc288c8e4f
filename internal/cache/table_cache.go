package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segyhp/loan-earnings/internal/domain"
)

const keyPrefix = "earnings:table:"

// TableCache stores earnings tables keyed by dataset.
type TableCache interface {
	// Get returns the cached table; ok is false on a miss.
	Get(ctx context.Context, dataset string) (table *domain.EarningsTable, ok bool, err error)
	Set(ctx context.Context, table *domain.EarningsTable) error
	Invalidate(ctx context.Context, dataset string) error
}

type redisTableCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisTableCache(client redis.Cmdable, ttl time.Duration) TableCache {
	return &redisTableCache{client: client, ttl: ttl}
}

// Key returns the Redis key holding a dataset's table
func Key(dataset string) string {
	return keyPrefix + dataset
}

func (c *redisTableCache) Get(ctx context.Context, dataset string) (*domain.EarningsTable, bool, error) {
	raw, err := c.client.Get(ctx, Key(dataset)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", Key(dataset), err)
	}

	table, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return table, true, nil
}

func (c *redisTableCache) Set(ctx context.Context, table *domain.EarningsTable) error {
	raw, err := encode(table)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, Key(table.Dataset), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", Key(table.Dataset), err)
	}
	return nil
}

func (c *redisTableCache) Invalidate(ctx context.Context, dataset string) error {
	if err := c.client.Del(ctx, Key(dataset)).Err(); err != nil {
		return fmt.Errorf("del %s: %w", Key(dataset), err)
	}
	return nil
}

func encode(table *domain.EarningsTable) ([]byte, error) {
	raw, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encode table %s: %w", table.Dataset, err)
	}
	return raw, nil
}

func decode(raw []byte) (*domain.EarningsTable, error) {
	var table domain.EarningsTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode cached table: %w", err)
	}
	return &table, nil
}
