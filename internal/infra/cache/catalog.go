package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const extrasCacheKey = "catalog:extras"

// CachedCatalogRepo is a read-through cache over the catalog readstore. The
// extras catalog is small and changes rarely, so it is served from redis
// with a TTL; cache failures degrade to the store, never to the caller.
type CachedCatalogRepo struct {
	inner queries.CatalogViewRepo
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCatalogRepo(inner queries.CatalogViewRepo, rdb *redis.Client, ttl time.Duration) *CachedCatalogRepo {
	return &CachedCatalogRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedCatalogRepo) FindAllRooms(ctx context.Context) ([]*queries.RoomView, error) {
	return c.inner.FindAllRooms(ctx)
}

func (c *CachedCatalogRepo) FindAllExtras(ctx context.Context) ([]*queries.ExtraView, error) {
	if cached, err := c.rdb.Get(ctx, extrasCacheKey).Bytes(); err == nil {
		var views []*queries.ExtraView
		if err := json.Unmarshal(cached, &views); err == nil {
			return views, nil
		}
		slog.Warn("discarding malformed extras cache entry")
	} else if err != redis.Nil {
		slog.Warn("extras cache read failed, falling through to store", "error", err)
	}

	views, err := c.inner.FindAllExtras(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := c.rdb.Set(ctx, extrasCacheKey, payload, c.ttl).Err(); err != nil {
			slog.Warn("extras cache write failed", "error", err)
		}
	}

	return views, nil
}
