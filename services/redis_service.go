package services

import (
	"context"
	"time"

	"hotelops/constants"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis, trả về false nếu chưa có cache
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Hàm xóa các key theo prefix
func DeleteByPrefix(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// BoardCache lưu kết quả sơ đồ phòng theo ngày. Mọi thao tác ghi đều xóa toàn bộ cache.
type BoardCache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type RedisBoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisBoardCache(rdb *redis.Client, ttl time.Duration) *RedisBoardCache {
	return &RedisBoardCache{rdb: rdb, ttl: ttl}
}

func (c *RedisBoardCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	return GetFromRedis(ctx, c.rdb, constants.BoardCachePrefix+key, target)
}

func (c *RedisBoardCache) Set(ctx context.Context, key string, value interface{}) error {
	return SetToRedis(ctx, c.rdb, constants.BoardCachePrefix+key, value, c.ttl)
}

func (c *RedisBoardCache) Invalidate(ctx context.Context) error {
	return DeleteByPrefix(ctx, c.rdb, constants.BoardCachePrefix)
}

// NoopBoardCache dùng khi không cấu hình Redis
type NoopBoardCache struct{}

func (NoopBoardCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopBoardCache) Set(context.Context, string, interface{}) error        { return nil }
func (NoopBoardCache) Invalidate(context.Context) error                      { return nil }
