package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type carService struct {
	store repository.Store
}

func NewCarService(store repository.Store) CarService {
	return &carService{store: store}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	if car.Status == "" {
		car.Status = domain.CarStatusReady
	}
	return s.store.Cars().Create(ctx, car)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.store.Cars().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCarNotFound)
	}
	return car, nil
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.store.Cars().List(ctx)
}

// UpdateCar updates catalog fields only. Status is owned by the contract
// lifecycle and keeps its stored value regardless of the input.
func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	existing, err := s.store.Cars().GetByID(ctx, car.ID)
	if err != nil {
		return nil, notFound(err, ErrCarNotFound)
	}
	car.Status = existing.Status
	if err := s.store.Cars().Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	if _, err := s.store.Cars().GetByID(ctx, id); err != nil {
		return notFound(err, ErrCarNotFound)
	}
	return s.store.Cars().Delete(ctx, id)
}
