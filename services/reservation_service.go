package services

import (
	"context"

	"hotelops/builders"
	"hotelops/commands"
	"hotelops/constants"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/availability"
	"hotelops/services/logger"
)

type ReservationServiceOptions struct {
	Store  *repository.Store
	Clock  Clock
	Logger logger.Logger
}

// ReservationService quản lý vòng đời reservation
type ReservationService struct {
	store  *repository.Store
	clock  Clock
	logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	return &ReservationService{
		store:  opts.Store,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
}

func validationError(message string) error {
	return apperrors.NewAppError(apperrors.ErrCodeValidation, message, nil)
}

func checkGuests(guests int, room *models.Room) error {
	if guests < 1 {
		return validationError("số khách phải lớn hơn 0")
	}
	if guests > room.Capacity {
		return validationError("số khách vượt quá sức chứa của phòng")
	}
	return nil
}

// Create tạo reservation Pending. Giá bằng 0 được tính theo số đêm x giá phòng.
func (s *ReservationService) Create(ctx context.Context, req dto.CreateReservationRequest) (*models.Reservation, error) {
	rng, err := availability.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, validationError("giá không được âm")
	}

	room, err := s.store.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	reservation := builders.NewReservationBuilder().
		WithRoom(room.ID).
		WithCustomer(req.CustomerID).
		WithDates(rng).
		WithGuests(req.NumberOfGuests).
		WithPrice(req.Price).
		WithNightlyRate(room.Price).
		WithNote(req.Note).
		Build()

	if err := checkGuests(reservation.NumberOfGuests, room); err != nil {
		return nil, err
	}

	if err := s.store.Reservations.Create(ctx, reservation); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeRoomUnavailable) {
			s.logger.Info("reservation rejected: room %d unavailable for %s..%s", room.ID, req.StartDate, req.EndDate)
		}
		return nil, err
	}

	s.logger.Info("reservation %d created for room %d", reservation.ID, room.ID)
	return reservation, nil
}

// Update sửa reservation khi còn Pending, kiểm tra trùng lịch trừ chính nó
func (s *ReservationService) Update(ctx context.Context, id uint, req dto.UpdateReservationRequest) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != constants.ReservationStatusPending {
		return nil, apperrors.ErrReservationNotEditable
	}

	start, end := reservation.StartDate, reservation.EndDate
	if req.StartDate != nil {
		if start, err = availability.ParseDate(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if end, err = availability.ParseDate(*req.EndDate); err != nil {
			return nil, err
		}
	}
	rng, err := availability.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	roomID := reservation.RoomID
	if req.RoomID != nil {
		roomID = *req.RoomID
	}
	room, err := s.store.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	reservation.RoomID = room.ID
	reservation.StartDate = rng.Start
	reservation.EndDate = rng.End
	if req.NumberOfGuests != nil {
		reservation.NumberOfGuests = *req.NumberOfGuests
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, validationError("giá không được âm")
		}
		reservation.Price = *req.Price
	}
	if req.Note != nil {
		reservation.Note = *req.Note
	}
	if err := checkGuests(reservation.NumberOfGuests, room); err != nil {
		return nil, err
	}

	if err := s.store.Reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.logger.Info("reservation %d updated", reservation.ID)
	return reservation, nil
}

// CheckIn chỉ hợp lệ từ Pending; mỗi phòng chỉ có một reservation CheckedIn
func (s *ReservationService) CheckIn(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Rooms.GetByID(ctx, reservation.RoomID); err != nil {
		return nil, err
	}

	if reservation.Status == constants.ReservationStatusPending {
		roomID := reservation.RoomID
		inHouse, _, err := s.store.Reservations.List(ctx, repository.ReservationFilter{
			RoomID:   &roomID,
			Statuses: []string{constants.ReservationStatusCheckedIn},
		})
		if err != nil {
			return nil, err
		}
		if len(inHouse) > 0 {
			return nil, apperrors.ErrRoomOccupied
		}
	}

	if err := commands.NewCheckInCommand(reservation, s.store.Reservations, s.clock.Now()).Execute(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reservation %d checked in", reservation.ID)
	return reservation, nil
}

// CheckOut chỉ hợp lệ từ CheckedIn
func (s *ReservationService) CheckOut(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := commands.NewCheckOutCommand(reservation, s.store.Reservations, s.clock.Now()).Execute(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reservation %d checked out", reservation.ID)
	return reservation, nil
}

// Cancel hợp lệ từ Pending hoặc CheckedIn; hủy lần hai bị từ chối
func (s *ReservationService) Cancel(ctx context.Context, id uint, reason string) (*models.Reservation, error) {
	reservation, err := s.store.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := commands.NewCancelCommand(reservation, s.store.Reservations, s.clock.Now(), reason).Execute(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reservation %d cancelled", reservation.ID)
	return reservation, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.store.Reservations.GetByID(ctx, id)
}

// List đọc reservation theo bộ lọc; ActiveOnly dùng cho tra cứu phòng trống,
// không bật thì trả về cả lịch sử
func (s *ReservationService) List(ctx context.Context, query dto.ReservationQuery) ([]models.Reservation, int64, error) {
	filter := repository.ReservationFilter{
		RoomID:     query.RoomID,
		CustomerID: query.CustomerID,
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		Limit:      query.Limit,
	}
	if query.Status != "" {
		if !models.IsValidReservationStatus(query.Status) {
			return nil, 0, validationError("trạng thái reservation không hợp lệ")
		}
		filter.Statuses = []string{query.Status}
	}

	if query.StartDate != "" {
		from, err := availability.ParseDate(query.StartDate)
		if err != nil {
			return nil, 0, err
		}
		filter.From = &from
	}
	if query.EndDate != "" {
		to, err := availability.ParseDate(query.EndDate)
		if err != nil {
			return nil, 0, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, 0, apperrors.ErrInvalidDateRange
	}

	return s.store.Reservations.List(ctx, filter)
}

// ListByRoom: history=false chỉ lấy reservation active
func (s *ReservationService) ListByRoom(ctx context.Context, roomID uint, history bool) ([]models.Reservation, error) {
	if _, err := s.store.Rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	list, _, err := s.store.Reservations.List(ctx, repository.ReservationFilter{
		RoomID:     &roomID,
		ActiveOnly: !history,
	})
	return list, err
}

// Overlaps kiểm tra [start, end) có trùng reservation active nào của phòng không
func (s *ReservationService) Overlaps(ctx context.Context, roomID uint, rng availability.DateRange, excludeID *uint) (bool, error) {
	active, err := s.store.Reservations.ListActiveByRooms(ctx, []uint{roomID})
	if err != nil {
		return false, err
	}
	return availability.Overlaps(roomID, rng.Start, rng.End, active, excludeID)
}
