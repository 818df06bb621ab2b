package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"quizbuilder/logger"
)

const (
	summaryKey = "quizzes:summaries"
	summaryTTL = 5 * time.Minute
)

// SummaryCache is a read-through cache for the serialized quiz summary
// list. A nil cache or nil client disables caching entirely; Redis
// trouble degrades to a miss rather than failing the request.
type SummaryCache struct {
	client *redis.Client
	log    *logger.Logger
}

func NewSummaryCache(client *redis.Client, baseLog *logger.Logger) *SummaryCache {
	return &SummaryCache{client: client, log: baseLog.With("cache", "SummaryCache")}
}

func (c *SummaryCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("summary cache read failed", "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *SummaryCache) Set(ctx context.Context, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, summaryKey, payload, summaryTTL).Err(); err != nil {
		c.log.Warn("summary cache write failed", "error", err)
	}
}

func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		c.log.Warn("summary cache invalidation failed", "error", err)
	}
}
