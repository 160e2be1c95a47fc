package models

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"trendkart/config"
)

// RedisClient backs the catalog response cache. It is nil when no Redis
// is reachable; every caller treats a nil client as cache-off.
var RedisClient *redis.Client

func InitRedis() {
	cfg := config.Get()

	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Invalid REDIS_URL, catalog cache disabled:", err)
			return
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis unreachable, catalog cache disabled:", err)
		return
	}

	RedisClient = client
	log.Println("Redis connected, catalog cache enabled")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
