package services

import (
	"context"
	"strings"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
)

type CustomerService struct {
	store *repository.Store
}

func NewCustomerService(store *repository.Store) *CustomerService {
	return &CustomerService{store: store}
}

func (s *CustomerService) Create(ctx context.Context, req dto.CustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "họ tên không được để trống", nil)
	}
	customer := &models.Customer{
		FullName: name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
	}
	if err := s.store.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	return s.store.Customers.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, page, limit int) ([]models.Customer, int64, error) {
	return s.store.Customers.List(ctx, page, limit)
}
