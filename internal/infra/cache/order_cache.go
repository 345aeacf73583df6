package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"cart-service/internal/dto"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type LoadFunc func(ctx context.Context) (*dto.OrdersResponse, error)

// OrderCache holds each member's order list. Entries are keyed by member, so
// a hit never crosses owners.
type OrderCache interface {
	GetOrLoad(ctx context.Context, memberID uint64, load LoadFunc) (*dto.OrdersResponse, error)
	Invalidate(ctx context.Context, memberID uint64)
}

var _ OrderCache = (*RedisOrderCache)(nil)

var errStaleLoad = errors.New("order list changed during load")

type RedisOrderCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

func NewRedisOrderCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisOrderCache {
	return &RedisOrderCache{rdb: rdb, ttl: ttl, logger: logger}
}

func Key(memberID uint64) string {
	return "orders:member:" + strconv.FormatUint(memberID, 10)
}

// GenerationKey is bumped on every invalidation. A load only fills the cache
// if the generation it started under is still current.
func GenerationKey(memberID uint64) string {
	return Key(memberID) + ":gen"
}

// GetOrLoad serves from redis when possible. Concurrent misses for the same
// member and generation share one load. Redis errors fall through to load.
func (c *RedisOrderCache) GetOrLoad(ctx context.Context, memberID uint64, load LoadFunc) (*dto.OrdersResponse, error) {
	key := Key(memberID)

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached dto.OrdersResponse
		if err := json.Unmarshal(b, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("order cache get failed", zap.String("key", key), zap.Error(err))
	}

	gen, genErr := c.generation(ctx, memberID)
	flight := key + "@" + strconv.FormatInt(gen, 10)

	v, err, _ := c.group.Do(flight, func() (any, error) {
		// shared by every waiter, so one caller going away must not cancel it
		ctx := context.WithoutCancel(ctx)

		resp, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if genErr == nil {
			c.store(ctx, memberID, gen, resp)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.OrdersResponse), nil
}

func (c *RedisOrderCache) generation(ctx context.Context, memberID uint64) (int64, error) {
	gen, err := c.rdb.Get(ctx, GenerationKey(memberID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		c.logger.Warn("order cache generation read failed", zap.Uint64("member_id", memberID), zap.Error(err))
	}
	return gen, err
}

// store writes resp unless an invalidation happened since gen was read.
func (c *RedisOrderCache) store(ctx context.Context, memberID uint64, gen int64, resp *dto.OrdersResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key, genKey := Key(memberID), GenerationKey(memberID)

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleLoad
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleLoad), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("skipping stale order list", zap.Uint64("member_id", memberID))
	default:
		c.logger.Warn("order cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the entry and bumps the generation in one transaction, so
// loads already running cannot write their result back.
func (c *RedisOrderCache) Invalidate(ctx context.Context, memberID uint64) {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, GenerationKey(memberID))
		p.Del(ctx, Key(memberID))
		return nil
	})
	if err != nil {
		c.logger.Warn("order cache invalidate failed", zap.Uint64("member_id", memberID), zap.Error(err))
	}
}
