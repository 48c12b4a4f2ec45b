package repository

import (
	"context"
	"time"

	"hotelops/models"
)

// RoomFilter lọc danh sách phòng
type RoomFilter struct {
	RoomTypes   []string
	Floor       *int
	MinCapacity int
	Features    []string
	MaxPrice    *float64
}

// ReservationFilter lọc danh sách reservation. From/To chọn các reservation
// giao với [From, To).
type ReservationFilter struct {
	RoomID     *uint
	CustomerID *uint
	Statuses   []string
	From       *time.Time
	To         *time.Time
	ActiveOnly bool
	Page       int
	Limit      int // 0 = không phân trang
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	// Delete từ chối xóa khi phòng còn reservation active
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]models.Reservation, int64, error)
	// ListActiveByRooms: Pending + CheckedIn; roomIDs rỗng = tất cả phòng
	ListActiveByRooms(ctx context.Context, roomIDs []uint) ([]models.Reservation, error)
	// ListForPeriod: reservation không bị hủy giao với [from, to) cộng mọi reservation CheckedIn
	ListForPeriod(ctx context.Context, roomIDs []uint, from, to time.Time) ([]models.Reservation, error)
	// Create kiểm tra lại trùng lịch ngay trước khi ghi, trong cùng transaction
	Create(ctx context.Context, reservation *models.Reservation) error
	// Update chỉ áp dụng khi reservation còn Pending, kiểm tra trùng lịch trừ chính nó
	Update(ctx context.Context, reservation *models.Reservation) error
	// Transition ghi trạng thái mới nếu trạng thái hiện tại vẫn là fromStatus
	Transition(ctx context.Context, reservation *models.Reservation, fromStatus string) error
}

type MaintenanceRepository interface {
	// Create ghi sự cố và bật cờ is_on_maintenance của phòng trong cùng transaction
	Create(ctx context.Context, issue *models.MaintenanceIssue) error
	// Resolve đóng sự cố và tính lại cờ is_on_maintenance
	Resolve(ctx context.Context, issue *models.MaintenanceIssue) error
	GetByID(ctx context.Context, roomID, issueID uint) (*models.MaintenanceIssue, error)
	ListByRoom(ctx context.Context, roomID uint, openOnly bool) ([]models.MaintenanceIssue, error)
	// ListByRooms: sự cố còn mở hoặc được xử lý sau resolvedAfter; roomIDs rỗng = tất cả
	ListByRooms(ctx context.Context, roomIDs []uint, resolvedAfter time.Time) ([]models.MaintenanceIssue, error)
	ListOpen(ctx context.Context) ([]models.MaintenanceIssue, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Customer, error)
	List(ctx context.Context, page, limit int) ([]models.Customer, int64, error)
}

// Store gom các repository lại để truyền vào service
type Store struct {
	Rooms        RoomRepository
	Reservations ReservationRepository
	Maintenance  MaintenanceRepository
	Customers    CustomerRepository
}
