package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/redis/go-redis/v9"
)

// currentOutagesKey - ключ последнего полного списка событий
const currentOutagesKey = "outages:current"

// RedisOutageCache хранит последний ответ внешнего API в Redis
type RedisOutageCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisOutageCache(redisClient *redis.Client, ttl time.Duration) service.OutageCache {
	return &RedisOutageCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetOutages возвращает nil, nil при промахе кэша
func (c *RedisOutageCache) GetOutages(ctx context.Context) ([]models.OutageEvent, error) {
	val, err := c.redisClient.Get(ctx, currentOutagesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outages from cache: %w", err)
	}

	var events []models.OutageEvent
	if err := json.Unmarshal(val, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outages from cache: %w", err)
	}
	return events, nil
}

// SetOutages сохраняет список событий на время ttl
func (c *RedisOutageCache) SetOutages(ctx context.Context, events []models.OutageEvent) error {
	val, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal outages for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, currentOutagesKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set outages in cache: %w", err)
	}
	return nil
}
