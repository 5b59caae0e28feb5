package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const datasetKey = "aether:console:dataset"

// DatasetCache keeps the last object-storage fetch around for a short TTL so
// every dashboard interaction does not refetch the bucket. Misses and cache
// errors are non-fatal; callers fall back to a fresh fetch.
type DatasetCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDatasetCache builds the cache with the given TTL (about 10 seconds in
// the reference setup).
func NewDatasetCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DatasetCache {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &DatasetCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached dataset, or ok=false on a miss.
func (c *DatasetCache) Get(ctx context.Context) ([]map[string]float64, bool) {
	data, err := c.client.Get(ctx, datasetKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("dataset cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var rows []map[string]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		c.logger.Warn("dataset cache entry corrupted", zap.Error(err))
		return nil, false
	}
	return rows, true
}

// Set stores the dataset for the configured TTL. Best effort.
func (c *DatasetCache) Set(ctx context.Context, rows []map[string]float64) {
	data, err := json.Marshal(rows)
	if err != nil {
		c.logger.Warn("dataset cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, datasetKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("dataset cache write failed", zap.Error(err))
	}
}
