package services

import (
	"context"
	"strings"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/availability"
	"hotelops/services/logger"
)

type MaintenanceServiceOptions struct {
	Store  *repository.Store
	Clock  Clock
	Logger logger.Logger
}

// MaintenanceService quản lý vòng đời sự cố bảo trì
type MaintenanceService struct {
	store  *repository.Store
	clock  Clock
	logger logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	return &MaintenanceService{
		store:  opts.Store,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
}

func (s *MaintenanceService) optionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	d, err := availability.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Report ghi nhận sự cố. Ngày dự kiến hoàn thành có thể nằm trong quá khứ,
// phòng vẫn ở trạng thái bảo trì cho tới khi Resolve. Ngày báo không được
// sau hôm nay để mọi view cùng thấy sự cố ngay khi được ghi nhận.
func (s *MaintenanceService) Report(ctx context.Context, roomID uint, req dto.ReportIssueRequest) (*models.MaintenanceIssue, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "mô tả sự cố không được để trống", nil)
	}

	estimated, err := s.optionalDate(req.EstimatedCompletionDate)
	if err != nil {
		return nil, err
	}
	reported, err := s.optionalDate(req.ReportedDate)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	if reported == nil {
		reported = &today
	}
	if reported.After(today) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "ngày báo sự cố không được sau hôm nay", nil)
	}

	issue := &models.MaintenanceIssue{
		RoomID:                  roomID,
		Description:             description,
		EstimatedCompletionDate: estimated,
		ReportedDate:            *reported,
	}
	if err := s.store.Maintenance.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance issue %d reported for room %d", issue.ID, roomID)
	return issue, nil
}

// Resolve đóng sự cố, không idempotent
func (s *MaintenanceService) Resolve(ctx context.Context, roomID, issueID uint, req dto.ResolveIssueRequest) (*models.MaintenanceIssue, error) {
	if _, err := s.store.Rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	issue, err := s.store.Maintenance.GetByID(ctx, roomID, issueID)
	if err != nil {
		return nil, err
	}
	if !issue.IsOpen() {
		return nil, apperrors.ErrAlreadyResolved
	}

	resolved, err := s.optionalDate(req.ResolvedDate)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	if resolved == nil {
		resolved = &today
	}
	if resolved.After(today) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "ngày xử lý không được sau hôm nay", nil)
	}
	if resolved.Before(availability.DateOf(issue.ReportedDate)) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "ngày xử lý không được trước ngày báo sự cố", nil)
	}

	issue.ResolvedDate = resolved
	issue.ResolutionNote = req.Note
	if err := s.store.Maintenance.Resolve(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance issue %d resolved for room %d", issue.ID, roomID)
	return issue, nil
}

func (s *MaintenanceService) ListByRoom(ctx context.Context, roomID uint, openOnly bool) ([]models.MaintenanceIssue, error) {
	if _, err := s.store.Rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.store.Maintenance.ListByRoom(ctx, roomID, openOnly)
}

func (s *MaintenanceService) ListOpen(ctx context.Context) ([]models.MaintenanceIssue, error) {
	return s.store.Maintenance.ListOpen(ctx)
}

// ListOverdue: sự cố còn mở đã quá ngày dự kiến, chỉ để tham khảo
func (s *MaintenanceService) ListOverdue(ctx context.Context) ([]models.MaintenanceIssue, error) {
	open, err := s.store.Maintenance.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	overdue := make([]models.MaintenanceIssue, 0)
	for _, issue := range open {
		if issue.IsOverdue(today) {
			overdue = append(overdue, issue)
		}
	}
	return overdue, nil
}

func (s *MaintenanceService) Today() time.Time {
	return s.clock.Today()
}
