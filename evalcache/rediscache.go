package evalcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
	"gopkg.in/yaml.v3"

	"github.com/geomkit/libgeom/geom"
)

func NewRedisCache(preKey string, redisCli *redis.Client, logger l.Wrapper) Cache {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "evalCache"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisCacheImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisCacheImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisCacheImpl) key(key string) string {
	return impl.preKey + ":" + key
}

func (impl *redisCacheImpl) Get(ctx context.Context, key string) (pts []geom.Point, ok bool, err error) {
	d, err := impl.redisCli.Get(ctx, impl.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = nil
		}

		return
	}

	err = yaml.Unmarshal(d, &pts)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("decode cached points failed")

		err = cuserror.NewWithErrorMsg(fmt.Sprintf("decode cached points for %v failed", key))

		return
	}

	ok = true

	return
}

func (impl *redisCacheImpl) Set(ctx context.Context, key string, pts []geom.Point, ttl time.Duration) (err error) {
	d, err := yaml.Marshal(pts)
	if err != nil {
		return
	}

	err = impl.redisCli.Set(ctx, impl.key(key), d, ttl).Err()

	return
}

func (impl *redisCacheImpl) Del(ctx context.Context, key string) error {
	return impl.redisCli.Del(ctx, impl.key(key)).Err()
}
