package config

import (
	"context"
	"time"

	"hotelops/services/logger"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis kết nối Redis; REDIS_ADDR rỗng thì trả về nil (tắt cache)
func ConnectRedis(cfg *Config, log logger.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, board cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUser,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	RedisClient = rdb
	log.Info("Kết nối Redis thành công: %s", res)
	return rdb, nil
}
