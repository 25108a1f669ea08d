package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) AddCustomer(ctx context.Context, cust *domain.Customer) error {
	return s.store.Customers().Create(ctx, cust)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	cust, err := s.store.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	if _, err := s.store.Customers().GetByID(ctx, cust.ID); err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	if err := s.store.Customers().Update(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	if _, err := s.store.Customers().GetByID(ctx, id); err != nil {
		return notFound(err, ErrCustomerNotFound)
	}
	return s.store.Customers().Delete(ctx, id)
}
