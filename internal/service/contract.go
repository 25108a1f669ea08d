package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/pricing"
	"car-rental-backend/internal/repository"
)

// autoReturnNote marks return receipts created by the status-update path.
const autoReturnNote = "Auto-created on status update"

type contractService struct {
	store repository.Store
	log   *slog.Logger
}

func NewContractService(store repository.Store) ContractService {
	return &contractService{
		store: store,
		log:   logger.WithService("contract"),
	}
}

// ListContracts returns all contracts and reconciles stragglers on the way:
// a contract that is not Completed but has a return receipt on file is
// corrected to Completed. Only the status is touched, so repeated calls are
// no-ops.
func (s *contractService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	contracts, err := s.store.Contracts().List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range contracts {
		c := &contracts[i]
		if c.Status == domain.ContractStatusCompleted {
			continue
		}
		returned, err := s.store.Receipts().HasReturnReceipt(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if !returned {
			continue
		}
		if err := s.store.Contracts().UpdateStatus(ctx, c.ID, domain.ContractStatusCompleted); err != nil {
			return nil, err
		}
		s.log.Info("reconciled contract with return receipt", "contract_id", c.ID, "previous_status", c.Status)
		c.Status = domain.ContractStatusCompleted
	}

	for i := range contracts {
		if err := s.hydrate(ctx, s.store, &contracts[i]); err != nil {
			return nil, err
		}
	}
	return contracts, nil
}

// CreateContract books a rental. The whole operation runs in one
// transaction: every requested car row is locked before its availability
// check, so nothing survives a conflict or a partial failure.
func (s *contractService) CreateContract(ctx context.Context, input CreateContractInput) (*domain.Contract, error) {
	if len(input.Cars) == 0 {
		return nil, ErrNoCarsRequested
	}
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	var created *domain.Contract
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, input.CustomerID); err != nil {
			return notFound(err, ErrCustomerNotFound)
		}

		// Lock and check every car before persisting anything.
		cars := make([]*domain.Car, 0, len(input.Cars))
		for _, req := range input.Cars {
			car, err := tx.Cars().GetByIDForUpdate(ctx, req.CarID)
			if err != nil {
				return notFound(err, ErrCarNotFound)
			}
			blocking, err := tx.Contracts().FindBlockingContract(ctx, req.CarID, input.StartDate, input.EndDate, 0)
			if err != nil {
				return err
			}
			if blocking != 0 {
				return &CarUnavailableError{CarID: req.CarID, BlockingContractID: blocking}
			}
			cars = append(cars, car)
		}

		c := &domain.Contract{
			CustomerID: input.CustomerID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			Status:     domain.ContractStatusRenting,
			Notes:      input.Notes,
		}
		if err := tx.Contracts().Create(ctx, c); err != nil {
			return err
		}

		days := pricing.RentalDays(input.StartDate, input.EndDate)
		for i, req := range input.Cars {
			rate := pricing.EffectiveDailyRate(req.DailyRateOverride, cars[i].DailyRate)
			cc := domain.ContractCar{
				ContractID: c.ID,
				CarID:      req.CarID,
				DailyRate:  rate,
				Amount:     pricing.CarCharge(days, rate),
			}
			if err := tx.Contracts().AddCar(ctx, &cc); err != nil {
				return err
			}
			if err := tx.Cars().UpdateStatus(ctx, req.CarID, domain.CarStatusRenting); err != nil {
				return err
			}
			c.Cars = append(c.Cars, cc)
		}

		for _, req := range input.Surcharges {
			cs := domain.ContractSurcharge{
				ContractID:  c.ID,
				SurchargeID: req.SurchargeID,
				UnitPrice:   req.UnitPrice,
				Quantity:    req.Quantity,
			}
			if err := tx.Contracts().AddSurcharge(ctx, &cs); err != nil {
				return err
			}
			c.Surcharges = append(c.Surcharges, cs)
		}

		c.TotalAmount = pricing.ContractTotal(c.Cars, c.Surcharges)
		if err := tx.Contracts().UpdateTotalAmount(ctx, c.ID, c.TotalAmount); err != nil {
			return err
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("contract created", "contract_id", created.ID, "customer_id", created.CustomerID, "total_amount", created.TotalAmount)
	return created, nil
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.store.Contracts().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	if err := s.hydrate(ctx, s.store, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateContract applies the fields present in the input, then runs the
// requested status through the transition table. The snapshot fields go
// first so a completion side effect sees the already-updated end date.
func (s *contractService) UpdateContract(ctx context.Context, id int32, input UpdateContractInput) (*domain.Contract, error) {
	var updated *domain.Contract
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		c, err := tx.Contracts().GetByID(ctx, id)
		if err != nil {
			return notFound(err, ErrContractNotFound)
		}

		if input.CustomerID != nil {
			c.CustomerID = *input.CustomerID
		}
		if input.StartDate != nil {
			c.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			c.EndDate = *input.EndDate
		}
		if err := validateDateRange(c.StartDate, c.EndDate); err != nil {
			return err
		}
		if input.TotalAmount != nil {
			c.TotalAmount = *input.TotalAmount
		}
		if input.Status != nil {
			c.Status = domain.ContractStatus(*input.Status)
		}
		if input.Notes != nil {
			c.Notes = *input.Notes
		}
		if err := tx.Contracts().Update(ctx, c); err != nil {
			return err
		}

		if input.Status != nil {
			switch domain.ClassifyTransition(*input.Status) {
			case domain.TransitionComplete:
				rec := &domain.ReturnReceipt{
					ContractID: c.ID,
					ReturnDate: c.EndDate,
					Notes:      autoReturnNote,
				}
				if err := s.complete(ctx, tx, c, rec, true); err != nil {
					return err
				}
			case domain.TransitionCancel:
				if err := s.cancel(ctx, tx, c); err != nil {
					return err
				}
			}
		}

		if err := s.hydrate(ctx, tx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteContract hard-deletes the contract and its line items. Payments and
// receipts stay behind as an audit trail; cars the contract still holds are
// released back to Ready.
func (s *contractService) DeleteContract(ctx context.Context, id int32) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Contracts().GetByID(ctx, id); err != nil {
			return notFound(err, ErrContractNotFound)
		}
		cars, err := tx.Contracts().ListCars(ctx, id)
		if err != nil {
			return err
		}
		for _, cc := range cars {
			car, err := tx.Cars().GetByID(ctx, cc.CarID)
			if err != nil {
				return notFound(err, ErrCarNotFound)
			}
			if car.Status == domain.CarStatusRenting {
				if err := tx.Cars().UpdateStatus(ctx, cc.CarID, domain.CarStatusReady); err != nil {
					return err
				}
			}
		}
		return tx.Contracts().Delete(ctx, id)
	})
}

func (s *contractService) AddPayment(ctx context.Context, contractID int32, input PaymentInput) (*domain.ContractPayment, error) {
	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	if _, err := s.store.Contracts().GetByID(ctx, contractID); err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}

	method := input.Method
	if method == "" {
		method = "Cash"
	}
	p := &domain.ContractPayment{
		ContractID:    contractID,
		Reference:     uuid.NewString(),
		PaymentMethod: method,
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		Notes:         input.Notes,
	}
	if err := s.store.Payments().Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("payment recorded", "contract_id", contractID, "payment_id", p.ID, "amount", p.Amount, "method", method)
	return p, nil
}

func (s *contractService) CreateDelivery(ctx context.Context, contractID int32, input DeliveryInput) (*domain.DeliveryReceipt, error) {
	if _, err := s.store.Contracts().GetByID(ctx, contractID); err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	rec := &domain.DeliveryReceipt{
		ContractID:             contractID,
		Reference:              uuid.NewString(),
		DeliveryEmployeeID:     input.DeliveryEmployeeID,
		ReceiverEmployeeID:     input.ReceiverEmployeeID,
		DeliveryDate:           input.DeliveryDate,
		CarConditionAtDelivery: input.CarConditionAtDelivery,
		Notes:                  input.Notes,
	}
	if err := s.store.Receipts().CreateDelivery(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateReturn records the physical return. Unlike the status-update path
// the receipt insert is unconditional, so a second call produces a second
// receipt.
func (s *contractService) CreateReturn(ctx context.Context, contractID int32, input ReturnInput) (*domain.ReturnReceipt, error) {
	var rec *domain.ReturnReceipt
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		c, err := tx.Contracts().GetByID(ctx, contractID)
		if err != nil {
			return notFound(err, ErrContractNotFound)
		}
		rec = &domain.ReturnReceipt{
			ContractID:         contractID,
			ReceiverEmployeeID: input.ReceiverEmployeeID,
			ReceiverBranchID:   input.ReceiverBranchID,
			ReturnDate:         input.ReturnDate,
			Notes:              input.Notes,
		}
		return s.complete(ctx, tx, c, rec, false)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// complete is the single completion path shared by the status-update
// transition and CreateReturn. With conditionalReceipt set the receipt is
// only inserted when the contract has none yet.
func (s *contractService) complete(ctx context.Context, tx repository.Store, c *domain.Contract, rec *domain.ReturnReceipt, conditionalReceipt bool) error {
	if conditionalReceipt {
		exists, err := tx.Receipts().HasReturnReceipt(ctx, c.ID)
		if err != nil {
			return err
		}
		if exists {
			rec = nil
		}
	}
	if rec != nil {
		if rec.Reference == "" {
			rec.Reference = uuid.NewString()
		}
		if err := tx.Receipts().CreateReturn(ctx, rec); err != nil {
			return err
		}
	}
	if err := s.freeCars(ctx, tx, c.ID); err != nil {
		return err
	}
	c.Status = domain.ContractStatusCompleted
	return tx.Contracts().UpdateStatus(ctx, c.ID, domain.ContractStatusCompleted)
}

func (s *contractService) cancel(ctx context.Context, tx repository.Store, c *domain.Contract) error {
	if err := s.freeCars(ctx, tx, c.ID); err != nil {
		return err
	}
	c.Status = domain.ContractStatusCanceled
	return tx.Contracts().UpdateStatus(ctx, c.ID, domain.ContractStatusCanceled)
}

func (s *contractService) freeCars(ctx context.Context, tx repository.Store, contractID int32) error {
	cars, err := tx.Contracts().ListCars(ctx, contractID)
	if err != nil {
		return err
	}
	for _, cc := range cars {
		if err := tx.Cars().UpdateStatus(ctx, cc.CarID, domain.CarStatusReady); err != nil {
			return err
		}
	}
	return nil
}

func (s *contractService) hydrate(ctx context.Context, store repository.Store, c *domain.Contract) error {
	cars, err := store.Contracts().ListCars(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Cars = cars
	surcharges, err := store.Contracts().ListSurcharges(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Surcharges = surcharges
	return nil
}

// validateDateRange rejects an inverted range. Empty or unparseable dates
// pass through; pricing handles those defensively.
func validateDateRange(startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		return nil
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}
