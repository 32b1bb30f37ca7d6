package evalcache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/geomkit/libgeom/geom"
)

func NewMemCache(defaultTTL time.Duration) Cache {
	if defaultTTL <= 0 {
		defaultTTL = time.Minute
	}

	return &memCacheImpl{
		cache: cache.New(defaultTTL, defaultTTL*2),
	}
}

type memCacheImpl struct {
	cache *cache.Cache
}

func (impl *memCacheImpl) Get(_ context.Context, key string) (pts []geom.Point, ok bool, err error) {
	i, ok := impl.cache.Get(key)
	if !ok {
		return
	}

	pts, ok = i.([]geom.Point)

	return
}

func (impl *memCacheImpl) Set(_ context.Context, key string, pts []geom.Point, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}

	impl.cache.Set(key, pts, ttl)

	return nil
}

func (impl *memCacheImpl) Del(_ context.Context, key string) error {
	impl.cache.Delete(key)

	return nil
}
