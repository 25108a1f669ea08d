package repository

import (
	"context"

	"car-rental-backend/internal/domain"
)

type ContractRepository interface {
	// Create persists the contract header and fills in its ID.
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error
	UpdateTotalAmount(ctx context.Context, id int32, total float64) error
	// Delete removes the header and its car/surcharge line items.
	Delete(ctx context.Context, id int32) error

	AddCar(ctx context.Context, cc *domain.ContractCar) error
	ListCars(ctx context.Context, contractID int32) ([]domain.ContractCar, error)
	AddSurcharge(ctx context.Context, cs *domain.ContractSurcharge) error
	ListSurcharges(ctx context.Context, contractID int32) ([]domain.ContractSurcharge, error)

	// FindBlockingContract reports the first non-cancelled contract other
	// than excludeID that reserves the car over an overlapping interval.
	// A missing date bound is treated as unbounded on that side. Returns 0
	// when the car is available.
	FindBlockingContract(ctx context.Context, carID int32, startDate, endDate string, excludeID int32) (int32, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	// GetByIDForUpdate locks the car row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, cust *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, cust *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type BranchRepository interface {
	Create(ctx context.Context, b *domain.Branch) error
	GetByID(ctx context.Context, id int32) (*domain.Branch, error)
	GetByName(ctx context.Context, name string) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Update(ctx context.Context, b *domain.Branch) error
	Delete(ctx context.Context, id int32) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int32) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int32) error
}

type SurchargeRepository interface {
	Create(ctx context.Context, s *domain.Surcharge) error
	GetByID(ctx context.Context, id int32) (*domain.Surcharge, error)
	List(ctx context.Context) ([]domain.Surcharge, error)
	Update(ctx context.Context, s *domain.Surcharge) error
	Delete(ctx context.Context, id int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.ContractPayment) error
	ListByContract(ctx context.Context, contractID int32) ([]domain.ContractPayment, error)
}

type ReceiptRepository interface {
	CreateDelivery(ctx context.Context, r *domain.DeliveryReceipt) error
	CreateReturn(ctx context.Context, r *domain.ReturnReceipt) error
	HasReturnReceipt(ctx context.Context, contractID int32) (bool, error)
	ListReturnsByContract(ctx context.Context, contractID int32) ([]domain.ReturnReceipt, error)
}

// Store bundles all repositories over one database handle. WithinTx runs fn
// against a Store bound to a single transaction: fn returning an error rolls
// everything back, otherwise the transaction commits.
type Store interface {
	Contracts() ContractRepository
	Cars() CarRepository
	Customers() CustomerRepository
	Branches() BranchRepository
	Employees() EmployeeRepository
	Surcharges() SurchargeRepository
	Payments() PaymentRepository
	Receipts() ReceiptRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
}
