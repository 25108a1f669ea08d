package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type employeeService struct {
	store repository.Store
}

func NewEmployeeService(store repository.Store) EmployeeService {
	return &employeeService{store: store}
}

func (s *employeeService) AddEmployee(ctx context.Context, e *domain.Employee) error {
	if e.BranchID != nil {
		if _, err := s.store.Branches().GetByID(ctx, *e.BranchID); err != nil {
			return notFound(err, ErrBranchNotFound)
		}
	}
	return s.store.Employees().Create(ctx, e)
}

func (s *employeeService) GetEmployee(ctx context.Context, id int32) (*domain.Employee, error) {
	e, err := s.store.Employees().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEmployeeNotFound)
	}
	return e, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.store.Employees().List(ctx)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, err := s.store.Employees().GetByID(ctx, e.ID); err != nil {
		return nil, notFound(err, ErrEmployeeNotFound)
	}
	if e.BranchID != nil {
		if _, err := s.store.Branches().GetByID(ctx, *e.BranchID); err != nil {
			return nil, notFound(err, ErrBranchNotFound)
		}
	}
	if err := s.store.Employees().Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int32) error {
	if _, err := s.store.Employees().GetByID(ctx, id); err != nil {
		return notFound(err, ErrEmployeeNotFound)
	}
	return s.store.Employees().Delete(ctx, id)
}
