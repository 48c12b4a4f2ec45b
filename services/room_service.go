package services

import (
	"context"
	"strings"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/logger"

	"github.com/lib/pq"
)

type RoomServiceOptions struct {
	Store  *repository.Store
	Logger logger.Logger
}

type RoomService struct {
	store  *repository.Store
	logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{store: opts.Store, logger: opts.Logger}
}

func roomFromRequest(req dto.RoomRequest) *models.Room {
	features := make(pq.StringArray, 0, len(req.Features))
	for _, f := range req.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return &models.Room{
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		RoomType:    strings.TrimSpace(req.RoomType),
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Features:    features,
		Description: req.Description,
	}
}

func (s *RoomService) Create(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	room := roomFromRequest(req)
	if err := room.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.store.Rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	s.logger.Info("room %s created", room.RoomNumber)
	return room, nil
}

// Update không đụng tới cờ is_on_maintenance, cờ này chỉ do maintenance ghi
func (s *RoomService) Update(ctx context.Context, id uint, req dto.RoomRequest) (*models.Room, error) {
	if _, err := s.store.Rooms.GetByID(ctx, id); err != nil {
		return nil, err
	}
	room := roomFromRequest(req)
	room.ID = id
	if err := room.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), nil)
	}
	if err := s.store.Rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return s.store.Rooms.GetByID(ctx, id)
}

// Delete từ chối khi phòng còn reservation active
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("room %d deleted", id)
	return nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	return s.store.Rooms.GetByID(ctx, id)
}
