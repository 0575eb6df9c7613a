package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"

	"storefront/logger"
)

// RedisClient backs the session store. When Redis is unreachable the server
// still serves traffic, but session timeout and logout revocation degrade to
// bare JWT expiry.
var RedisClient *redis.Client

func InitRedis() {
	var opt *redis.Options
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("failed to parse REDIS_URL, running without session store")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		logger.Log.Warn().Err(err).Msg("redis connection failed, running without session store")
		RedisClient = nil
		return
	}

	logger.Log.Info().Msg("redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
