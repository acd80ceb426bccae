package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UseCaseCache is a read-through cache for use-case-by-id lookups, backed by
// Redis. Key format: usecase:<id>. Cache errors are swallowed: a failing
// cache degrades to direct DB reads, it never fails a request.
type UseCaseCache struct {
	client *redis.Client
}

// NewUseCaseCache creates a UseCaseCache wrapping the given Redis client.
func NewUseCaseCache(client *redis.Client) *UseCaseCache {
	return &UseCaseCache{client: client}
}

func (c *UseCaseCache) Get(ctx context.Context, id uint) (*domain.UseCase, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var uc domain.UseCase
	if err := json.Unmarshal(raw, &uc); err != nil {
		// Stale or corrupt entry: drop it so the next read repopulates.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, false
	}
	return &uc, true
}

func (c *UseCaseCache) Set(ctx context.Context, uc *domain.UseCase) {
	raw, err := json.Marshal(uc)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(uc.ID), raw, cacheTTL).Err()
}

func (c *UseCaseCache) Invalidate(ctx context.Context, id uint) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *UseCaseCache) key(id uint) string {
	return fmt.Sprintf("usecase:%d", id)
}
