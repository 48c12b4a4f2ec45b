package dto

import "time"

type RoomRequest struct {
	RoomNumber  string   `json:"roomNumber" validate:"required,max=20"`
	RoomType    string   `json:"roomType" validate:"max=50"`
	Floor       int      `json:"floor"`
	Capacity    int      `json:"capacity" validate:"required,gte=1"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features" validate:"dive,required"`
	Description string   `json:"description"`
}

type RoomResponse struct {
	ID              uint      `json:"id"`
	RoomNumber      string    `json:"roomNumber"`
	RoomType        string    `json:"roomType"`
	Floor           int       `json:"floor"`
	Capacity        int       `json:"capacity"`
	Price           float64   `json:"price"`
	Features        []string  `json:"features"`
	Description     string    `json:"description,omitempty"`
	IsOnMaintenance bool      `json:"isOnMaintenance"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RoomSearchFilters bộ lọc tìm phòng, được lưu lại theo session
type RoomSearchFilters struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	RoomType  string     `json:"roomType,omitempty"`
	Floor     *int       `json:"floor,omitempty"`
	Guests    *int       `json:"guests,omitempty"`
	Features  []string   `json:"features,omitempty"`
	MaxPrice  *float64   `json:"maxPrice,omitempty"`
}

// AvailableRoomsQuery query string của GET /rooms/available
type AvailableRoomsQuery struct {
	StartDate string   `form:"startDate"`
	EndDate   string   `form:"endDate"`
	RoomType  string   `form:"roomType"`
	Floor     *int     `form:"floor"`
	Guests    *int     `form:"guests" validate:"omitempty,gte=1"`
	Features  []string `form:"features"`
	MaxPrice  *float64 `form:"maxPrice" validate:"omitempty,gte=0"`
	Reset     bool     `form:"reset"`
}

// RoomListQuery query string của GET /rooms
type RoomListQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	RoomType  string `form:"roomType"`
	Status    string `form:"status" validate:"omitempty,oneof=Available Occupied UnderMaintenance"`
	Floor     *int   `form:"floor"`
	PageQuery
}

type BoardQuery struct {
	Date     string `form:"date"`
	RoomType string `form:"roomType"`
	Floor    *int   `form:"floor"`
}
