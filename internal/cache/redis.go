package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/onetech-shop/onetech-backend/internal/metrics"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

const keyPrefix = "catalog:"

// Redis implements Cache on top of a Redis server. Entries are JSON
// product slices with a TTL, so a lost invalidation heals itself.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l *slog.Logger) RedisOption {
	return func(r *Redis) {
		r.logger = l
	}
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration, opts ...RedisOption) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	r := &Redis{
		client: client,
		ttl:    ttl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// GetCategory returns the cached products for a category.
func (r *Redis) GetCategory(ctx context.Context, category string) ([]domain.Product, bool, error) {
	data, err := r.client.Get(ctx, keyFor(category)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMissesTotal.Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt entry is treated as a miss; it gets overwritten on
		// the next SetCategory.
		r.logger.Warn("dropping corrupt cache entry", "category", category, "error", err)
		metrics.CacheMissesTotal.Inc()
		return nil, false, nil
	}

	metrics.CacheHitsTotal.Inc()
	return items, true, nil
}

// SetCategory stores the full product slice for a category.
func (r *Redis) SetCategory(ctx context.Context, category string, items []domain.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	if err := r.client.Set(ctx, keyFor(category), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// InvalidateCategory drops the cached entry for a category.
func (r *Redis) InvalidateCategory(ctx context.Context, category string) error {
	if err := r.client.Del(ctx, keyFor(category)).Err(); err != nil {
		return fmt.Errorf("invalidating cache entry: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// keyFor normalizes category names so "Процессоры" and "процессоры"
// share one entry, matching the store's case-insensitive lookups.
func keyFor(category string) string {
	return keyPrefix + strings.ToLower(category)
}
