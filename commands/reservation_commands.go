package commands

import (
	"context"
	"time"

	"hotelops/models"
	"hotelops/repository"
)

// ReservationCommand định nghĩa interface cho các command chuyển trạng thái
type ReservationCommand interface {
	Execute(ctx context.Context) error
}

// transition áp dụng state pattern rồi ghi có điều kiện trạng thái cũ
func transition(ctx context.Context, repo repository.ReservationRepository, r *models.Reservation, apply func(models.ReservationState) error) error {
	from := r.Status
	if err := apply(models.GetReservationState(from)); err != nil {
		return err
	}
	if err := repo.Transition(ctx, r, from); err != nil {
		return err
	}
	return nil
}

// CheckInCommand nhận phòng
type CheckInCommand struct {
	reservation *models.Reservation
	repo        repository.ReservationRepository
	at          time.Time
}

func NewCheckInCommand(reservation *models.Reservation, repo repository.ReservationRepository, at time.Time) *CheckInCommand {
	return &CheckInCommand{reservation: reservation, repo: repo, at: at}
}

func (c *CheckInCommand) Execute(ctx context.Context) error {
	return transition(ctx, c.repo, c.reservation, func(s models.ReservationState) error {
		return s.CheckIn(c.reservation, c.at)
	})
}

// CheckOutCommand trả phòng
type CheckOutCommand struct {
	reservation *models.Reservation
	repo        repository.ReservationRepository
	at          time.Time
}

func NewCheckOutCommand(reservation *models.Reservation, repo repository.ReservationRepository, at time.Time) *CheckOutCommand {
	return &CheckOutCommand{reservation: reservation, repo: repo, at: at}
}

func (c *CheckOutCommand) Execute(ctx context.Context) error {
	return transition(ctx, c.repo, c.reservation, func(s models.ReservationState) error {
		return s.CheckOut(c.reservation, c.at)
	})
}

// CancelCommand hủy reservation
type CancelCommand struct {
	reservation *models.Reservation
	repo        repository.ReservationRepository
	at          time.Time
	reason      string
}

func NewCancelCommand(reservation *models.Reservation, repo repository.ReservationRepository, at time.Time, reason string) *CancelCommand {
	return &CancelCommand{reservation: reservation, repo: repo, at: at, reason: reason}
}

func (c *CancelCommand) Execute(ctx context.Context) error {
	return transition(ctx, c.repo, c.reservation, func(s models.ReservationState) error {
		return s.Cancel(c.reservation, c.at, c.reason)
	})
}
