package service

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCarNotFound       = errors.New("car not found")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrSurchargeNotFound = errors.New("surcharge not found")

	ErrNoCarsRequested  = errors.New("at least one car is required")
	ErrNegativeAmount   = errors.New("payment amount must not be negative")
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	ErrBranchNameTaken = errors.New("branch name already exists")
)

// CarUnavailableError names the car that already has a non-cancelled
// contract over an overlapping interval.
type CarUnavailableError struct {
	CarID              int32
	BlockingContractID int32
}

func (e *CarUnavailableError) Error() string {
	return fmt.Sprintf("car %d is unavailable for the requested dates (blocked by contract %d)", e.CarID, e.BlockingContractID)
}

// notFound translates a no-rows lookup into the caller-facing sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}
