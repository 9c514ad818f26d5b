package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"

	"github.com/dcode-github/property_valuation/models"
)

const (
	keyPrefix   = "valuation:"
	loadTimeout = 10 * time.Second
)

// LoadFunc reads the authoritative list on a cache miss.
type LoadFunc func(ctx context.Context) ([]models.SavedValuation, error)

// ListCache fronts saved-valuation list reads.
type ListCache interface {
	List(ctx context.Context, owner string, limit int64, load LoadFunc) ([]models.SavedValuation, error)
	Invalidate(ctx context.Context, owner string)
}

// ValuationCache is a Redis read-through cache. Redis failures are logged
// and fall through to the loader; they never fail the read.
type ValuationCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func New(client *redis.Client, ttl time.Duration) *ValuationCache {
	return &ValuationCache{client: client, ttl: ttl}
}

func ownerHash(owner string) string {
	sum := blake2b.Sum256([]byte(owner))
	return hex.EncodeToString(sum[:16])
}

// ListKey is the cache key for one owner's list at a given limit. Owner IDs
// are hashed so they never appear in key names.
func ListKey(owner string, limit int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, ownerHash(owner), limit)
}

func ownerPattern(owner string) string {
	return keyPrefix + ownerHash(owner) + ":*"
}

func (c *ValuationCache) List(ctx context.Context, owner string, limit int64, load LoadFunc) ([]models.SavedValuation, error) {
	key := ListKey(owner, limit)

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var list []models.SavedValuation
		if err := json.Unmarshal(cached, &list); err == nil {
			log.Printf("Cache Hit for key: %s", key)
			return list, nil
		}
		log.Printf("Discarding undecodable cache entry %s", key)
	} else if err != redis.Nil {
		log.Printf("Redis GET error for key %s: %v", key, err)
	}

	log.Printf("Cache Miss for key: %s", key)

	// Waiters share this load, so one caller going away must not fail it.
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		list, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(list)
		if err != nil {
			log.Printf("Failed to serialize valuations for key %s: %v", key, err)
			return list, nil
		}
		if err := c.client.Set(loadCtx, key, data, c.ttl).Err(); err != nil {
			log.Printf("Failed to cache response for key %s: %v", key, err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.SavedValuation), nil
}

// Invalidate drops every cached list of owner.
func (c *ValuationCache) Invalidate(ctx context.Context, owner string) {
	const scanCount = 100
	pattern := ownerPattern(owner)

	var keysToDelete []string
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", pattern, err)
			return
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error executing pipeline for deleting %d valuation cache keys: %v", len(keysToDelete), err)
		return
	}
	log.Printf("Valuation cache invalidated: deleted %d keys matching '%s'", len(keysToDelete), pattern)
}

// NoCache always reads through. Used when Redis is not configured.
type NoCache struct{}

func (NoCache) List(ctx context.Context, _ string, _ int64, load LoadFunc) ([]models.SavedValuation, error) {
	return load(ctx)
}

func (NoCache) Invalidate(context.Context, string) {}
