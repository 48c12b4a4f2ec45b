package services

import (
	"context"
	"time"

	"hotelops/constants"
	"hotelops/dto"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const lastFiltersTTL = 30 * time.Minute

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.RoomSearchFilters) error {
	b, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, constants.LastFiltersPrefix+key, b, lastFiltersTTL).Err()
}

// GetLastFilters trả về nil, nil khi session chưa có bộ lọc
func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.RoomSearchFilters, error) {
	val, err := rdb.Get(ctx, constants.LastFiltersPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var filters dto.RoomSearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, constants.LastFiltersPrefix+key).Err()
}

// Merge yêu cầu cũ với yêu cầu mới, giá trị mới được ưu tiên
func MergeFilters(old *dto.RoomSearchFilters, new *dto.RoomSearchFilters) *dto.RoomSearchFilters {
	if old == nil {
		return new
	}
	new.RoomType = orString(new.RoomType, old.RoomType)
	new.Floor = orIntPointer(new.Floor, old.Floor)
	new.Guests = orIntPointer(new.Guests, old.Guests)
	new.MaxPrice = orFloatPointer(new.MaxPrice, old.MaxPrice)

	// Khoảng ngày chỉ lấy lại khi người dùng không nhập cả hai đầu
	if new.StartDate == nil && new.EndDate == nil {
		new.StartDate = old.StartDate
		new.EndDate = old.EndDate
	}

	new.Features = mergeUniqueStrings(old.Features, new.Features)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func mergeUniqueStrings(a, b []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, val := range append(append([]string{}, a...), b...) {
		key := normalizeInput(val)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, val)
	}
	return result
}
