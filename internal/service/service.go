package service

import (
	"context"

	"car-rental-backend/internal/domain"
)

// ContractCarRequest is one requested car line. A nil override means the
// car's catalog daily rate applies.
type ContractCarRequest struct {
	CarID             int32    `json:"car_id"`
	DailyRateOverride *float64 `json:"daily_rate,omitempty"`
}

// ContractSurchargeRequest carries the unit price and quantity snapshotted
// onto the contract, independent of the live surcharge catalog.
type ContractSurchargeRequest struct {
	SurchargeID int32   `json:"surcharge_id"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int32   `json:"quantity"`
}

type CreateContractInput struct {
	CustomerID int32                      `json:"customer_id"`
	StartDate  string                     `json:"start_date,omitempty"`
	EndDate    string                     `json:"end_date,omitempty"`
	Notes      string                     `json:"notes,omitempty"`
	Cars       []ContractCarRequest       `json:"cars"`
	Surcharges []ContractSurchargeRequest `json:"surcharges"`
}

// UpdateContractInput applies only the fields that are present.
type UpdateContractInput struct {
	CustomerID  *int32   `json:"customer_id,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

type PaymentInput struct {
	Amount      float64 `json:"amount"`
	Method      string  `json:"method,omitempty"`
	PaymentDate string  `json:"payment_date,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type DeliveryInput struct {
	DeliveryEmployeeID     *int32 `json:"delivery_employee_id,omitempty"`
	ReceiverEmployeeID     *int32 `json:"receiver_employee_id,omitempty"`
	DeliveryDate           string `json:"delivery_date,omitempty"`
	CarConditionAtDelivery string `json:"car_condition_at_delivery,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

type ReturnInput struct {
	ReceiverEmployeeID *int32 `json:"receiver_employee_id,omitempty"`
	ReceiverBranchID   *int32 `json:"receiver_branch_id,omitempty"`
	ReturnDate         string `json:"return_date,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// ContractService is the only externally exposed entry point into the
// contract lifecycle.
type ContractService interface {
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	CreateContract(ctx context.Context, input CreateContractInput) (*domain.Contract, error)
	GetContract(ctx context.Context, id int32) (*domain.Contract, error)
	UpdateContract(ctx context.Context, id int32, input UpdateContractInput) (*domain.Contract, error)
	DeleteContract(ctx context.Context, id int32) error
	AddPayment(ctx context.Context, contractID int32, input PaymentInput) (*domain.ContractPayment, error)
	CreateDelivery(ctx context.Context, contractID int32, input DeliveryInput) (*domain.DeliveryReceipt, error)
	CreateReturn(ctx context.Context, contractID int32, input ReturnInput) (*domain.ReturnReceipt, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, id int32) error
}

type CustomerService interface {
	AddCustomer(ctx context.Context, cust *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, cust *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int32) error
}

type BranchService interface {
	AddBranch(ctx context.Context, b *domain.Branch) error
	GetBranch(ctx context.Context, id int32) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, b *domain.Branch) (*domain.Branch, error)
	DeleteBranch(ctx context.Context, id int32) error
}

type EmployeeService interface {
	AddEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id int32) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int32) error
}

type SurchargeService interface {
	AddSurcharge(ctx context.Context, s *domain.Surcharge) error
	GetSurcharge(ctx context.Context, id int32) (*domain.Surcharge, error)
	ListSurcharges(ctx context.Context) ([]domain.Surcharge, error)
	UpdateSurcharge(ctx context.Context, s *domain.Surcharge) (*domain.Surcharge, error)
	DeleteSurcharge(ctx context.Context, id int32) error
}
