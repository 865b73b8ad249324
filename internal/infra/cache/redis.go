package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/projecttracker/tracker/internal/config"
	"github.com/projecttracker/tracker/internal/modules/model"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

const (
	productTypesKey    = "project_tracker:product_types"
	productTypesGenKey = "project_tracker:product_types:gen"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

// ProductTypeCache stores the name-ordered product type list as one JSON
// value. Every Invalidate bumps a generation counter; a Set carrying an older
// generation is dropped so a slow reader cannot restore a list that a write
// already replaced.
type ProductTypeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductTypeCache(rdb *redis.Client, ttl time.Duration) *ProductTypeCache {
	return &ProductTypeCache{rdb: rdb, ttl: ttl}
}

// Generation returns the current invalidation counter. Read it before
// loading the list that will be passed to Set.
func (c *ProductTypeCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, productTypesGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *ProductTypeCache) Get(ctx context.Context) ([]*model.ProductType, bool, error) {
	raw, err := c.rdb.Get(ctx, productTypesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []*model.ProductType
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cached product types: %w", err)
	}
	return items, true, nil
}

// Set stores items only while the generation still equals gen.
func (c *ProductTypeCache) Set(ctx context.Context, gen int64, items []*model.ProductType) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, productTypesGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, productTypesKey, raw, c.ttl)
			return nil
		})
		return err
	}, productTypesGenKey)
	if errors.Is(err, redis.TxFailedErr) {
		// invalidated while we were writing
		return nil
	}
	return err
}

func (c *ProductTypeCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, productTypesGenKey)
		pipe.Del(ctx, productTypesKey)
		return nil
	})
	return err
}
