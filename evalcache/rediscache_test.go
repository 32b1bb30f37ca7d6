package evalcache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/libconfig/ut"
	"github.com/stretchr/testify/assert"

	"github.com/geomkit/libgeom/geom"
)

func initRedis(dsn string) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	err = cli.Ping(ctx).Err()
	if err != nil {
		return
	}

	return
}

func TestRedisCache(t *testing.T) {
	cfg := ut.SetupUTConfig4Redis(t)
	redisCli, err := initRedis(cfg.RedisDSN)
	assert.Nil(t, err)

	key := Key(9, "evalpts")

	redisCli.Del(context.Background(), "ut:"+key)

	c := NewRedisCache("ut", redisCli, nil)

	_, ok, err := c.Get(context.Background(), key)
	assert.Nil(t, err)
	assert.False(t, ok)

	pts := []geom.Point{{0, 0}, {1, 1}}
	assert.Nil(t, c.Set(context.Background(), key, pts, time.Minute))

	got, ok, err := c.Get(context.Background(), key)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, pts, got)

	assert.Nil(t, c.Del(context.Background(), key))

	_, ok, err = c.Get(context.Background(), key)
	assert.Nil(t, err)
	assert.False(t, ok)
}
