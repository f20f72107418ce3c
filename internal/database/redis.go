package database

import (
	"context"
	"log"
	"time"

	"blog-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client used by the token revocation store
func ConnectRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}

	log.Println("Successfully connected to redis")

	return client
}
