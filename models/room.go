package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	RoomNumber      string         `json:"roomNumber" gorm:"uniqueIndex:idx_rooms_room_number;type:varchar(20);not null"`
	RoomType        string         `json:"roomType" gorm:"index;type:varchar(50)"`
	Floor           int            `json:"floor" gorm:"index"`
	Capacity        int            `json:"capacity" gorm:"default:1"`
	Price           float64        `json:"price"`
	Features        pq.StringArray `json:"features" gorm:"type:text[]"`
	Description     string         `json:"description"`
	IsOnMaintenance bool           `json:"isOnMaintenance" gorm:"default:false"` // chỉ là gợi ý cache, không dùng để quyết định
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) Validate() error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return fmt.Errorf("room number is required")
	}
	if r.Capacity < 1 {
		return fmt.Errorf("invalid capacity: %d, must be at least 1", r.Capacity)
	}
	if r.Price < 0 {
		return fmt.Errorf("invalid price: %.2f, must not be negative", r.Price)
	}
	return nil
}

// HasFeatures trả về true nếu phòng có tất cả tiện ích được yêu cầu
func (r *Room) HasFeatures(features []string) bool {
	for _, want := range features {
		found := false
		for _, have := range r.Features {
			if strings.EqualFold(strings.TrimSpace(have), strings.TrimSpace(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
