package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

func errNoRows() error { return sql.ErrNoRows }

// mockStore satisfies repository.Store. WithinTx runs the callback against
// the same store, which is what the real implementation does modulo the
// transaction handle.
type mockStore struct {
	contracts  *MockContractRepository
	cars       *MockCarRepository
	customers  *MockCustomerRepository
	branches   *MockBranchRepository
	employees  *MockEmployeeRepository
	surcharges *MockSurchargeRepository
	payments   *MockPaymentRepository
	receipts   *MockReceiptRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		contracts:  new(MockContractRepository),
		cars:       new(MockCarRepository),
		customers:  new(MockCustomerRepository),
		branches:   new(MockBranchRepository),
		employees:  new(MockEmployeeRepository),
		surcharges: new(MockSurchargeRepository),
		payments:   new(MockPaymentRepository),
		receipts:   new(MockReceiptRepository),
	}
}

func (s *mockStore) Contracts() repository.ContractRepository   { return s.contracts }
func (s *mockStore) Cars() repository.CarRepository             { return s.cars }
func (s *mockStore) Customers() repository.CustomerRepository   { return s.customers }
func (s *mockStore) Branches() repository.BranchRepository      { return s.branches }
func (s *mockStore) Employees() repository.EmployeeRepository   { return s.employees }
func (s *mockStore) Surcharges() repository.SurchargeRepository { return s.surcharges }
func (s *mockStore) Payments() repository.PaymentRepository     { return s.payments }
func (s *mockStore) Receipts() repository.ReceiptRepository     { return s.receipts }

func (s *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateTotalAmount(ctx context.Context, id int32, total float64) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractRepository) AddCar(ctx context.Context, cc *domain.ContractCar) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

func (m *MockContractRepository) ListCars(ctx context.Context, contractID int32) ([]domain.ContractCar, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractCar), args.Error(1)
}

func (m *MockContractRepository) AddSurcharge(ctx context.Context, cs *domain.ContractSurcharge) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockContractRepository) ListSurcharges(ctx context.Context, contractID int32) ([]domain.ContractSurcharge, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractSurcharge), args.Error(1)
}

func (m *MockContractRepository) FindBlockingContract(ctx context.Context, carID int32, startDate, endDate string, excludeID int32) (int32, error) {
	args := m.Called(ctx, carID, startDate, endDate, excludeID)
	return args.Get(0).(int32), args.Error(1)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, cust *domain.Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, cust *domain.Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) Create(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) GetByID(ctx context.Context, id int32) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetByName(ctx context.Context, name string) (*domain.Branch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSurchargeRepository struct {
	mock.Mock
}

func (m *MockSurchargeRepository) Create(ctx context.Context, s *domain.Surcharge) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSurchargeRepository) GetByID(ctx context.Context, id int32) (*domain.Surcharge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Surcharge), args.Error(1)
}

func (m *MockSurchargeRepository) List(ctx context.Context) ([]domain.Surcharge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Surcharge), args.Error(1)
}

func (m *MockSurchargeRepository) Update(ctx context.Context, s *domain.Surcharge) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSurchargeRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.ContractPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.ContractPayment, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractPayment), args.Error(1)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) CreateDelivery(ctx context.Context, r *domain.DeliveryReceipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) CreateReturn(ctx context.Context, r *domain.ReturnReceipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) HasReturnReceipt(ctx context.Context, contractID int32) (bool, error) {
	args := m.Called(ctx, contractID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReceiptRepository) ListReturnsByContract(ctx context.Context, contractID int32) ([]domain.ReturnReceipt, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnReceipt), args.Error(1)
}
