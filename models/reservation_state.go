package models

import (
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
)

// ReservationState định nghĩa interface cho các trạng thái reservation
type ReservationState interface {
	CheckIn(r *Reservation, at time.Time) error
	CheckOut(r *Reservation, at time.Time) error
	Cancel(r *Reservation, at time.Time, reason string) error
}

func invalidTransition(r *Reservation, action string) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
		"không thể "+action+" reservation ở trạng thái "+r.Status, nil)
}

// PendingState trạng thái chờ nhận phòng
type PendingState struct{}

func (s *PendingState) CheckIn(r *Reservation, at time.Time) error {
	r.Status = constants.ReservationStatusCheckedIn
	r.CheckedInAt = &at
	return nil
}

func (s *PendingState) CheckOut(r *Reservation, at time.Time) error {
	return invalidTransition(r, "check-out")
}

func (s *PendingState) Cancel(r *Reservation, at time.Time, reason string) error {
	r.Status = constants.ReservationStatusCancelled
	r.CancelledAt = &at
	r.CancelReason = reason
	return nil
}

// CheckedInState khách đang ở
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(r *Reservation, at time.Time) error {
	return invalidTransition(r, "check-in")
}

func (s *CheckedInState) CheckOut(r *Reservation, at time.Time) error {
	r.Status = constants.ReservationStatusCheckedOut
	r.CheckedOutAt = &at
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation, at time.Time, reason string) error {
	r.Status = constants.ReservationStatusCancelled
	r.CancelledAt = &at
	r.CancelReason = reason
	return nil
}

// TerminalState dùng cho CheckedOut và Cancelled, mọi chuyển trạng thái đều bị từ chối
type TerminalState struct{}

func (s *TerminalState) CheckIn(r *Reservation, at time.Time) error {
	return invalidTransition(r, "check-in")
}

func (s *TerminalState) CheckOut(r *Reservation, at time.Time) error {
	return invalidTransition(r, "check-out")
}

func (s *TerminalState) Cancel(r *Reservation, at time.Time, reason string) error {
	return invalidTransition(r, "hủy")
}

// GetReservationState trả về state tương ứng với trạng thái reservation
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusPending:
		return &PendingState{}
	case constants.ReservationStatusCheckedIn:
		return &CheckedInState{}
	default:
		return &TerminalState{}
	}
}
