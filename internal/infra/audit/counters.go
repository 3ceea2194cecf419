package audit

import (
	"context"
	"strconv"

	"medverify/internal/domain/verdict"
	"medverify/internal/infra"
	"medverify/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const (
	keyTotal      = "verify:stats:total"
	keySuccessful = "verify:stats:successful"
	keyFailed     = "verify:stats:failed"
)

// Counters keeps the aggregate verification counters in Redis so the stats
// endpoint doesn't scan the audit trail. Postgres stays the durable record;
// the counters are incremented once per attempt at append time.
type Counters struct {
	client *redis.Client
}

func NewCounters(client *redis.Client) usecase.StatsCounter {
	return &Counters{client: client}
}

func (c *Counters) Record(ctx context.Context, status verdict.Status) error {
	key := keyFailed
	if status == verdict.StatusAuthentic {
		key = keySuccessful
	}

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, keyTotal)
	pipe.Incr(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to increment verification counters", err, infra.KindUnavailable)
	}
	return nil
}

func (c *Counters) Snapshot(ctx context.Context) (usecase.Stats, error) {
	vals, err := c.client.MGet(ctx, keyTotal, keySuccessful, keyFailed).Result()
	if err != nil {
		return usecase.Stats{}, infra.WrapRepoErr("failed to read verification counters", err, infra.KindUnavailable)
	}

	parse := func(v any) int64 {
		s, ok := v.(string)
		if !ok {
			return 0 // key absent: no attempts recorded yet
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	return usecase.Stats{
		Total:      parse(vals[0]),
		Successful: parse(vals[1]),
		Failed:     parse(vals[2]),
	}, nil
}
