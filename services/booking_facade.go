package services

import (
	"context"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/services/notification"
)

// BookingFacade gom các thao tác ghi: gọi service, xóa cache sơ đồ phòng
// và phát sự kiện vòng đời qua websocket
type BookingFacade struct {
	reservations *ReservationService
	maintenance  *MaintenanceService
	rooms        *RoomService
	cache        BoardCache
	notifier     notification.Service
	logger       logger.Logger
}

type BookingFacadeOptions struct {
	Reservations *ReservationService
	Maintenance  *MaintenanceService
	Rooms        *RoomService
	Cache        BoardCache
	Notifier     notification.Service
	Logger       logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	cache := opts.Cache
	if cache == nil {
		cache = NoopBoardCache{}
	}
	return &BookingFacade{
		reservations: opts.Reservations,
		maintenance:  opts.Maintenance,
		rooms:        opts.Rooms,
		cache:        cache,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
	}
}

// afterWrite: lỗi cache hoặc thông báo chỉ ghi log, không làm hỏng thao tác chính
func (f *BookingFacade) afterWrite(ctx context.Context, event *notification.EventBuilder) {
	if err := f.cache.Invalidate(ctx); err != nil {
		f.logger.Error("board cache invalidate failed: %v", err)
	}
	if f.notifier == nil {
		return
	}
	message, err := event.Build()
	if err != nil {
		f.logger.Error("build lifecycle event failed: %v", err)
		return
	}
	if err := f.notifier.SendMessage(message); err != nil {
		f.logger.Error("broadcast lifecycle event failed: %v", err)
	}
}

func reservationEvent(action string, r *models.Reservation) *notification.EventBuilder {
	return notification.NewEventBuilder(action, r.RoomID).
		WithReservation(r.ID, r.Status).
		WithMessage("reservation " + action)
}

func issueEvent(action string, issue *models.MaintenanceIssue) *notification.EventBuilder {
	return notification.NewEventBuilder(action, issue.RoomID).
		WithIssue(issue.ID).
		WithMessage("maintenance issue " + action)
}

// CreateReservation tạo booking mới
func (f *BookingFacade) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*models.Reservation, error) {
	r, err := f.reservations.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, reservationEvent("created", r))
	return r, nil
}

func (f *BookingFacade) UpdateReservation(ctx context.Context, id uint, req dto.UpdateReservationRequest) (*models.Reservation, error) {
	r, err := f.reservations.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, reservationEvent("updated", r))
	return r, nil
}

func (f *BookingFacade) CheckIn(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := f.reservations.CheckIn(ctx, id)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, reservationEvent("checked_in", r))
	return r, nil
}

func (f *BookingFacade) CheckOut(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := f.reservations.CheckOut(ctx, id)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, reservationEvent("checked_out", r))
	return r, nil
}

// CancelReservation hủy booking
func (f *BookingFacade) CancelReservation(ctx context.Context, id uint, reason string) (*models.Reservation, error) {
	r, err := f.reservations.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, reservationEvent("cancelled", r))
	return r, nil
}

func (f *BookingFacade) ReportIssue(ctx context.Context, roomID uint, req dto.ReportIssueRequest) (*models.MaintenanceIssue, error) {
	issue, err := f.maintenance.Report(ctx, roomID, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, issueEvent("reported", issue))
	return issue, nil
}

func (f *BookingFacade) ResolveIssue(ctx context.Context, roomID, issueID uint, req dto.ResolveIssueRequest) (*models.MaintenanceIssue, error) {
	issue, err := f.maintenance.Resolve(ctx, roomID, issueID, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, issueEvent("resolved", issue))
	return issue, nil
}

func (f *BookingFacade) CreateRoom(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	room, err := f.rooms.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, notification.NewEventBuilder("room_created", room.ID).WithMessage("room "+room.RoomNumber+" created"))
	return room, nil
}

func (f *BookingFacade) UpdateRoom(ctx context.Context, id uint, req dto.RoomRequest) (*models.Room, error) {
	room, err := f.rooms.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	f.afterWrite(ctx, notification.NewEventBuilder("room_updated", room.ID).WithMessage("room "+room.RoomNumber+" updated"))
	return room, nil
}

func (f *BookingFacade) DeleteRoom(ctx context.Context, id uint) error {
	if err := f.rooms.Delete(ctx, id); err != nil {
		return err
	}
	f.afterWrite(ctx, notification.NewEventBuilder("room_deleted", id).WithMessage("room deleted"))
	return nil
}
