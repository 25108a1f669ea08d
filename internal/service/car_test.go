package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
)

func TestCarService(t *testing.T) {
	ctx := context.Background()

	t.Run("AddCar defaults status to Ready", func(t *testing.T) {
		store := newMockStore()
		svc := NewCarService(store)

		store.cars.On("Create", mock.Anything, mock.AnythingOfType("*domain.Car")).Return(nil)

		car := &domain.Car{LicensePlate: "51A-123.45", DailyRate: 500000}
		err := svc.AddCar(ctx, car)
		assert.NoError(t, err)
		assert.Equal(t, domain.CarStatusReady, car.Status)
	})

	t.Run("UpdateCar never touches status", func(t *testing.T) {
		store := newMockStore()
		svc := NewCarService(store)

		store.cars.On("GetByID", mock.Anything, int32(1)).Return(&domain.Car{ID: 1, Status: domain.CarStatusRenting}, nil)
		store.cars.On("Update", mock.Anything, mock.AnythingOfType("*domain.Car")).Return(nil)

		updated, err := svc.UpdateCar(ctx, &domain.Car{ID: 1, DailyRate: 550000, Status: domain.CarStatusReady})
		assert.NoError(t, err)
		assert.Equal(t, domain.CarStatusRenting, updated.Status)
		assert.Equal(t, 550000.0, updated.DailyRate)
	})

	t.Run("Unknown car maps to sentinel", func(t *testing.T) {
		store := newMockStore()
		svc := NewCarService(store)

		store.cars.On("GetByID", mock.Anything, int32(404)).Return(nil, errNoRows())

		_, err := svc.GetCar(ctx, 404)
		assert.ErrorIs(t, err, ErrCarNotFound)
	})
}
