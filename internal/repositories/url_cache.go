package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
)

// URLCacheRepository caches short-code to original-URL mappings in Redis for
// the public resolve path. The database stays the source of truth; click
// counters are never cached.
type URLCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewURLCacheRepository creates a new repository instance with the given TTL.
func NewURLCacheRepository(client *redis.Client, expiration time.Duration) *URLCacheRepository {
	return &URLCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetOriginalURL fetches a cached target for the given short code.
func (r *URLCacheRepository) GetOriginalURL(ctx context.Context, shortCode string) (string, error) {
	key := cacheKey(shortCode)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Debugw("url cache miss", "key", key, "error", err)
		if err == redis.Nil {
			return "", fmt.Errorf("original URL not found in cache for %s", shortCode)
		}
		return "", err
	}

	logger.Log.Debugw("url cache hit", "key", key)

	return val, nil
}

// SetOriginalURL caches the target for the given short code with expiration.
func (r *URLCacheRepository) SetOriginalURL(ctx context.Context, shortCode, originalURL string) error {
	key := cacheKey(shortCode)
	err := r.client.Set(ctx, key, originalURL, r.exp).Err()

	logger.Log.Debugw("url cache set", "key", key, "error", err)

	return err
}

// Invalidate drops the cached target for the given short code. Called when an
// owner updates or deletes the URL so the resolve path does not serve a stale
// target for the full TTL.
func (r *URLCacheRepository) Invalidate(ctx context.Context, shortCode string) error {
	key := cacheKey(shortCode)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("url cache invalidate", "key", key, "error", err)

	return err
}

func cacheKey(shortCode string) string {
	return "short_url:" + shortCode
}
