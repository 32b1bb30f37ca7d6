package evalcache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geomkit/libgeom/geom"
)

// Cache memoizes evaluated point tables for concrete evaluators, keyed by
// geometry id plus whatever the evaluator mixes in (parameter range,
// resolution). A cache miss is never an error.
type Cache interface {
	Get(ctx context.Context, key string) (pts []geom.Point, ok bool, err error)
	Set(ctx context.Context, key string, pts []geom.Point, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

func Key(geomID int64, parts ...string) string {
	if len(parts) == 0 {
		return fmt.Sprintf("%d", geomID)
	}

	return fmt.Sprintf("%d:%s", geomID, strings.Join(parts, ":"))
}
