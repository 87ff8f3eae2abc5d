// Package cache implements the detection cache over Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
)

// DefaultTTL bounds how long a cached detection stays valid. Detections for
// a given model are immutable, but the model itself can be retrained, so
// entries expire rather than live forever.
const DefaultTTL = 10 * time.Minute

// DetectionCache caches detection results in Redis, keyed by a hash of the
// input text. Every cache failure degrades to a miss: detection must keep
// working when Redis is down.
type DetectionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewDetectionCache creates a detection cache with the given TTL.
// ttl <= 0 selects DefaultTTL.
func NewDetectionCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *DetectionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DetectionCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached detection for a text, or nil on a miss
func (c *DetectionCache) Get(ctx context.Context, text string) (*service.Detection, error) {
	val, err := c.client.Get(ctx, cacheKey(text)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.log.Debug("Detection cache get failed", zap.Error(err))
		return nil, nil
	}

	var detection service.Detection
	if err := json.Unmarshal([]byte(val), &detection); err != nil {
		c.log.Warn("Dropping undecodable cache entry", zap.Error(err))
		return nil, nil
	}
	return &detection, nil
}

// Set caches the detection for a text
func (c *DetectionCache) Set(ctx context.Context, text string, detection *service.Detection) error {
	payload, err := json.Marshal(detection)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, cacheKey(text), payload, c.ttl).Err(); err != nil {
		c.log.Debug("Detection cache set failed", zap.Error(err))
	}
	return nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "detect:" + hex.EncodeToString(sum[:])
}
