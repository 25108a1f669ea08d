package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type surchargeService struct {
	store repository.Store
}

func NewSurchargeService(store repository.Store) SurchargeService {
	return &surchargeService{store: store}
}

func (s *surchargeService) AddSurcharge(ctx context.Context, sc *domain.Surcharge) error {
	if sc.UnitPrice < 0 {
		return ErrNegativeAmount
	}
	return s.store.Surcharges().Create(ctx, sc)
}

func (s *surchargeService) GetSurcharge(ctx context.Context, id int32) (*domain.Surcharge, error) {
	sc, err := s.store.Surcharges().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSurchargeNotFound)
	}
	return sc, nil
}

func (s *surchargeService) ListSurcharges(ctx context.Context) ([]domain.Surcharge, error) {
	return s.store.Surcharges().List(ctx)
}

func (s *surchargeService) UpdateSurcharge(ctx context.Context, sc *domain.Surcharge) (*domain.Surcharge, error) {
	if sc.UnitPrice < 0 {
		return nil, ErrNegativeAmount
	}
	if _, err := s.store.Surcharges().GetByID(ctx, sc.ID); err != nil {
		return nil, notFound(err, ErrSurchargeNotFound)
	}
	if err := s.store.Surcharges().Update(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *surchargeService) DeleteSurcharge(ctx context.Context, id int32) error {
	if _, err := s.store.Surcharges().GetByID(ctx, id); err != nil {
		return notFound(err, ErrSurchargeNotFound)
	}
	return s.store.Surcharges().Delete(ctx, id)
}
