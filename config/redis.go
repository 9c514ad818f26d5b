package config

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisErr    error
	redisOnce   sync.Once
)

// InitRedis connects once per process; later calls return the same client.
func InitRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	redisOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			redisErr = fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
			return
		}
		log.Println("Connected to Redis")
		redisClient = client
	})
	return redisClient, redisErr
}
