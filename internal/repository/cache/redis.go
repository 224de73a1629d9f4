package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/screenbase/movie_catalog/internal/domain"
)

const genreListKey = "catalog:genres"

// RedisCache caches the known-genre list. The set of genres only grows
// and grows rarely, so a single TTL'd key invalidated on registration
// is enough.
type RedisCache struct {
	client       *redis.Client
	genreListTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, genreListTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       client,
		genreListTTL: genreListTTL,
	}
}

// GetGenreList retrieves the cached genre list
func (c *RedisCache) GetGenreList(ctx context.Context) ([]*domain.Genre, error) {
	val, err := c.client.Get(ctx, genreListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var genres []*domain.Genre
	if err := json.Unmarshal([]byte(val), &genres); err != nil {
		return nil, err
	}

	return genres, nil
}

// SetGenreList stores the genre list in cache
func (c *RedisCache) SetGenreList(ctx context.Context, genres []*domain.Genre) error {
	data, err := json.Marshal(genres)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, genreListKey, data, c.genreListTTL).Err()
}

// InvalidateGenreList removes the genre list from cache
func (c *RedisCache) InvalidateGenreList(ctx context.Context) error {
	return c.client.Del(ctx, genreListKey).Err()
}
