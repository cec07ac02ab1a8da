package dietplan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisClient is the subset of the go-redis API the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CacheObserver is notified of every cache lookup with "hit", "miss" or
// "error".
type CacheObserver func(result string)

// CachedStore is a read-through, write-through Redis cache in front of a
// Store. Redis failures are logged and fall through to the wrapped store.
type CachedStore struct {
	Store
	client  RedisClient
	ttl     time.Duration
	observe CacheObserver
}

// NewCachedStore creates a new CachedStore.
func NewCachedStore(store Store, client RedisClient, ttl time.Duration, observe CacheObserver) *CachedStore {
	if observe == nil {
		observe = func(string) {}
	}
	return &CachedStore{Store: store, client: client, ttl: ttl, observe: observe}
}

func planKey(planID string) string    { return "dietplan:plan:" + planID }
func summaryKey(planID string) string { return "dietplan:summary:" + planID }

// lookup records the outcome of one cache read with the request logger and
// the observer.
func (c *CachedStore) lookup(ctx context.Context, planID, kind, result string) {
	zerolog.Ctx(ctx).Info().Str("plan_id", planID).Str("kind", kind).Str("result", result).Msg("plan cache lookup")
	c.observe(result)
}

// GetPlan returns the cached plan, loading and caching it on a miss.
func (c *CachedStore) GetPlan(ctx context.Context, planID string) (*DietPlan, error) {
	data, err := c.client.Get(ctx, planKey(planID)).Bytes()
	switch {
	case err == nil:
		var plan DietPlan
		if jsonErr := json.Unmarshal(data, &plan); jsonErr == nil {
			c.lookup(ctx, planID, "plan", "hit")
			return &plan, nil
		}
		zerolog.Ctx(ctx).Warn().Str("plan_id", planID).Msg("discarding undecodable cached plan")
		c.lookup(ctx, planID, "plan", "error")
	case errors.Is(err, redis.Nil):
		c.lookup(ctx, planID, "plan", "miss")
	default:
		zerolog.Ctx(ctx).Warn().Err(err).Str("plan_id", planID).Msg("redis get failed")
		c.lookup(ctx, planID, "plan", "error")
	}

	plan, err := c.Store.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	c.setPlan(ctx, planID, plan)
	return plan, nil
}

// SavePlan saves to the wrapped store, then refreshes the cache.
func (c *CachedStore) SavePlan(ctx context.Context, planID string, plan *DietPlan) error {
	if err := c.Store.SavePlan(ctx, planID, plan); err != nil {
		return err
	}
	c.setPlan(ctx, planID, plan)
	return nil
}

// GetPlanSummary returns the cached summary, loading it on a miss.
func (c *CachedStore) GetPlanSummary(ctx context.Context, planID string) (string, error) {
	summary, err := c.client.Get(ctx, summaryKey(planID)).Result()
	switch {
	case err == nil:
		c.lookup(ctx, planID, "summary", "hit")
		return summary, nil
	case errors.Is(err, redis.Nil):
		c.lookup(ctx, planID, "summary", "miss")
	default:
		zerolog.Ctx(ctx).Warn().Err(err).Str("plan_id", planID).Msg("redis get failed")
		c.lookup(ctx, planID, "summary", "error")
	}

	summary, err = c.Store.GetPlanSummary(ctx, planID)
	if err != nil {
		return "", err
	}
	if summary != "" {
		c.set(ctx, summaryKey(planID), summary)
	}
	return summary, nil
}

// SavePlanSummary saves to the wrapped store, then refreshes the cache.
func (c *CachedStore) SavePlanSummary(ctx context.Context, planID, summary string) error {
	if err := c.Store.SavePlanSummary(ctx, planID, summary); err != nil {
		return err
	}
	c.set(ctx, summaryKey(planID), summary)
	return nil
}

func (c *CachedStore) setPlan(ctx context.Context, planID string, plan *DietPlan) {
	data, err := json.Marshal(plan)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("plan_id", planID).Msg("failed to marshal plan for cache")
		return
	}
	c.set(ctx, planKey(planID), data)
}

func (c *CachedStore) set(ctx context.Context, key string, value interface{}) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}
