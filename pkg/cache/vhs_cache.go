package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// VHSCacheTTL is the time-to-live for cached catalog entries.
	VHSCacheTTL = 24 * time.Hour

	vhsCacheKeyPrefix = "vhs"
)

// CachedVHS is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Additional fields from other aggregates
// can be added here for read optimization without touching the domain model.
type CachedVHS struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	Genre       string    `json:"genre"`
	RentalPrice float64   `json:"rental_price"`
	StockLevel  int32     `json:"stock_level"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// VHSCache provides structured read/write operations for catalog cache entries.
// Key format: "vhs:{vhsID}"
type VHSCache struct {
	client *RedisClient
}

// NewVHSCache creates a new VHSCache backed by the given RedisClient.
func NewVHSCache(r *RedisClient) *VHSCache {
	return &VHSCache{client: r}
}

// Get retrieves a cached VHS by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *VHSCache) Get(ctx context.Context, vhsID uuid.UUID) (*CachedVHS, error) {
	key := c.key(vhsID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	releaseDate, err := time.Parse(time.RFC3339Nano, vals["release_date"])
	if err != nil {
		return nil, fmt.Errorf("cache parse release_date: %w", err)
	}
	rentalPrice, err := strconv.ParseFloat(vals["rental_price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse rental_price: %w", err)
	}
	stockLevel, err := strconv.ParseInt(vals["stock_level"], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("cache parse stock_level: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedVHS{
		ID:          id,
		Title:       vals["title"],
		ReleaseDate: releaseDate,
		Genre:       vals["genre"],
		RentalPrice: rentalPrice,
		StockLevel:  int32(stockLevel),
		Status:      vals["status"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached VHS as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *VHSCache) Set(ctx context.Context, vhs *CachedVHS) error {
	key := c.key(vhs.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", vhs.ID.String(),
		"title", vhs.Title,
		"release_date", vhs.ReleaseDate.UTC().Format(time.RFC3339Nano),
		"genre", vhs.Genre,
		"rental_price", strconv.FormatFloat(vhs.RentalPrice, 'f', -1, 64),
		"stock_level", strconv.FormatInt(int64(vhs.StockLevel), 10),
		"status", vhs.Status,
		"created_at", vhs.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, VHSCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached VHS.
func (c *VHSCache) Delete(ctx context.Context, vhsID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(vhsID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "vhs:{vhsID}"
func (c *VHSCache) key(vhsID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", vhsCacheKeyPrefix, vhsID)
}
