package usage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "lexkit:usage:"

type cachedSource struct {
	next   Source
	client redis.UniversalClient
	ttl    time.Duration
}

// NewCachedSource wraps a Source with a short-lived Redis read-through
// cache. Counter reads happen on every gated action, so even a few
// seconds of caching removes most of the database load. Cache failures
// fall through to the wrapped source; a stale-by-TTL counter is an
// accepted trade-off for limit checks.
func NewCachedSource(next Source, client redis.UniversalClient, ttl time.Duration) Source {
	if next == nil {
		panic("usage: wrapped Source is required")
	}
	if client == nil {
		panic("usage: redis client is required")
	}
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &cachedSource{next: next, client: client, ttl: ttl}
}

func (s *cachedSource) Counters(ctx context.Context, tenantID uuid.UUID) (Counters, error) {
	key := cacheKeyPrefix + tenantID.String()

	if raw, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var c Counters
		if err := json.Unmarshal(raw, &c); err == nil {
			return c, nil
		}
		// Corrupt entry: drop it and recount.
		_ = s.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		// Redis down is not fatal, count directly.
		counters, srcErr := s.next.Counters(ctx, tenantID)
		if srcErr != nil {
			return Counters{}, errors.Join(ErrCacheUnavailable, srcErr)
		}
		return counters, nil
	}

	counters, err := s.next.Counters(ctx, tenantID)
	if err != nil {
		return Counters{}, err
	}

	if raw, err := json.Marshal(counters); err == nil {
		_ = s.client.Set(ctx, key, raw, s.ttl).Err()
	}
	return counters, nil
}

// Invalidate drops the cached counters for a tenant. Call it after a
// resource is created or removed so the next check sees fresh counts.
func Invalidate(ctx context.Context, client redis.UniversalClient, tenantID uuid.UUID) error {
	return client.Del(ctx, cacheKeyPrefix+tenantID.String()).Err()
}
