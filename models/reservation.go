package models

import (
	"time"

	"hotelops/constants"
)

// Reservation giữ phòng trong khoảng [StartDate, EndDate), EndDate không tính.
type Reservation struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	RoomID         uint       `json:"roomId" gorm:"index;not null"`
	CustomerID     uint       `json:"customerId" gorm:"index;not null"`
	StartDate      time.Time  `json:"startDate" gorm:"type:date;index;not null"`
	EndDate        time.Time  `json:"endDate" gorm:"type:date;index;not null"`
	NumberOfGuests int        `json:"numberOfGuests" gorm:"default:1"`
	Price          float64    `json:"price"`
	Status         string     `json:"status" gorm:"type:varchar(20);index;not null;default:Pending"`
	Note           string     `json:"note"`
	CancelReason   string     `json:"cancelReason"`
	CheckedInAt    *time.Time `json:"checkedInAt"`
	CheckedOutAt   *time.Time `json:"checkedOutAt"`
	CancelledAt    *time.Time `json:"cancelledAt"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive: Pending hoặc CheckedIn, tham gia kiểm tra trùng lịch
func (r *Reservation) IsActive() bool {
	return IsActiveStatus(r.Status)
}

// Contains kiểm tra ngày d có nằm trong [StartDate, EndDate) không
func (r *Reservation) Contains(d time.Time) bool {
	return !d.Before(r.StartDate) && d.Before(r.EndDate)
}

// Nights số đêm lưu trú
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

func IsActiveStatus(status string) bool {
	return status == constants.ReservationStatusPending || status == constants.ReservationStatusCheckedIn
}

// ActiveStatuses dùng trong các câu truy vấn IN (?)
func ActiveStatuses() []string {
	return []string{constants.ReservationStatusPending, constants.ReservationStatusCheckedIn}
}

func IsValidReservationStatus(status string) bool {
	switch status {
	case constants.ReservationStatusPending,
		constants.ReservationStatusCheckedIn,
		constants.ReservationStatusCheckedOut,
		constants.ReservationStatusCancelled:
		return true
	}
	return false
}
