package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractService) CreateContract(ctx context.Context, input service.CreateContractInput) (*domain.Contract, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractService) GetContract(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractService) UpdateContract(ctx context.Context, id int32, input service.UpdateContractInput) (*domain.Contract, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractService) DeleteContract(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractService) AddPayment(ctx context.Context, contractID int32, input service.PaymentInput) (*domain.ContractPayment, error) {
	args := m.Called(ctx, contractID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractPayment), args.Error(1)
}

func (m *MockContractService) CreateDelivery(ctx context.Context, contractID int32, input service.DeliveryInput) (*domain.DeliveryReceipt, error) {
	args := m.Called(ctx, contractID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryReceipt), args.Error(1)
}

func (m *MockContractService) CreateReturn(ctx context.Context, contractID int32, input service.ReturnInput) (*domain.ReturnReceipt, error) {
	args := m.Called(ctx, contractID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnReceipt), args.Error(1)
}

func newTestRouter(svc service.ContractService) *mux.Router {
	router := mux.NewRouter()
	RegisterContractRoutes(router, svc)
	return router
}

func TestContractHandlerList(t *testing.T) {
	svc := new(MockContractService)
	svc.On("ListContracts", mock.Anything).Return([]domain.Contract{
		{ID: 1, CustomerID: 5, Status: domain.ContractStatusRenting},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var contracts []domain.Contract
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contracts))
	assert.Len(t, contracts, 1)
	assert.Equal(t, int32(1), contracts[0].ID)
}

func TestContractHandlerCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockContractService)
		svc.On("CreateContract", mock.Anything, mock.AnythingOfType("service.CreateContractInput")).
			Return(&domain.Contract{ID: 42, CustomerID: 5, Status: domain.ContractStatusRenting}, nil)

		body := bytes.NewBufferString(`{"customer_id":5,"start_date":"2026-01-10","end_date":"2026-01-13","cars":[{"car_id":1}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", body)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Unavailable car yields conflict", func(t *testing.T) {
		svc := new(MockContractService)
		svc.On("CreateContract", mock.Anything, mock.Anything).
			Return(nil, &service.CarUnavailableError{CarID: 2, BlockingContractID: 7})

		body := bytes.NewBufferString(`{"customer_id":5,"cars":[{"car_id":2}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", body)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp struct {
			CarID              int32 `json:"car_id"`
			BlockingContractID int32 `json:"blocking_contract_id"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int32(2), resp.CarID)
		assert.Equal(t, int32(7), resp.BlockingContractID)
	})

	t.Run("No cars yields bad request", func(t *testing.T) {
		svc := new(MockContractService)
		svc.On("CreateContract", mock.Anything, mock.Anything).
			Return(nil, service.ErrNoCarsRequested)

		body := bytes.NewBufferString(`{"customer_id":5}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", body)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContractHandlerGet(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		svc := new(MockContractService)
		svc.On("GetContract", mock.Anything, int32(404)).Return(nil, service.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/404", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		svc := new(MockContractService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/abc", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetContract", mock.Anything, mock.Anything)
	})
}

func TestContractHandlerDelete(t *testing.T) {
	svc := new(MockContractService)
	svc.On("DeleteContract", mock.Anything, int32(9)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/contracts/9", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestContractHandlerReturn(t *testing.T) {
	svc := new(MockContractService)
	svc.On("CreateReturn", mock.Anything, int32(9), mock.AnythingOfType("service.ReturnInput")).
		Return(&domain.ReturnReceipt{ID: 1, ContractID: 9, Reference: "ref-1"}, nil)

	body := bytes.NewBufferString(`{"return_date":"2026-01-14"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/9/return", body)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
