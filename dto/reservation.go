package dto

import "time"

type CreateReservationRequest struct {
	CustomerID     uint    `json:"customerId" validate:"required"`
	RoomID         uint    `json:"roomId" validate:"required"`
	StartDate      string  `json:"startDate" validate:"required"`
	EndDate        string  `json:"endDate" validate:"required"`
	NumberOfGuests int     `json:"numberOfGuests" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
	Note           string  `json:"note" validate:"max=500"`
}

// UpdateReservationRequest: trường nil giữ nguyên giá trị cũ
type UpdateReservationRequest struct {
	RoomID         *uint    `json:"roomId"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	NumberOfGuests *int     `json:"numberOfGuests" validate:"omitempty,gte=1"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Note           *string  `json:"note" validate:"omitempty,max=500"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type ReservationQuery struct {
	RoomID     *uint  `form:"roomId"`
	CustomerID *uint  `form:"customerId"`
	Status     string `form:"status" validate:"omitempty,oneof=Pending CheckedIn CheckedOut Cancelled"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	ActiveOnly bool   `form:"activeOnly"`
	PageQuery
}

type ReservationCreatedResponse struct {
	ID    uint    `json:"id"`
	Price float64 `json:"price"`
}

type ReservationResponse struct {
	ID             uint       `json:"id"`
	RoomID         uint       `json:"roomId"`
	CustomerID     uint       `json:"customerId"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	Nights         int        `json:"nights"`
	NumberOfGuests int        `json:"numberOfGuests"`
	Price          float64    `json:"price"`
	Status         string     `json:"status"`
	Note           string     `json:"note,omitempty"`
	CancelReason   string     `json:"cancelReason,omitempty"`
	CheckedInAt    *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt   *time.Time `json:"checkedOutAt,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
