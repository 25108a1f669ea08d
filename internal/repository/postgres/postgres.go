package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// standalone or inside a unit-of-work started by WithinTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db         *sql.DB
	contracts  repository.ContractRepository
	cars       repository.CarRepository
	customers  repository.CustomerRepository
	branches   repository.BranchRepository
	employees  repository.EmployeeRepository
	surcharges repository.SurchargeRepository
	payments   repository.PaymentRepository
	receipts   repository.ReceiptRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, dbtx DBTX) *Store {
	return &Store{
		db:         db,
		contracts:  NewContractRepository(dbtx),
		cars:       NewCarRepository(dbtx),
		customers:  NewCustomerRepository(dbtx),
		branches:   NewBranchRepository(dbtx),
		employees:  NewEmployeeRepository(dbtx),
		surcharges: NewSurchargeRepository(dbtx),
		payments:   NewPaymentRepository(dbtx),
		receipts:   NewReceiptRepository(dbtx),
	}
}

func (s *Store) Contracts() repository.ContractRepository   { return s.contracts }
func (s *Store) Cars() repository.CarRepository             { return s.cars }
func (s *Store) Customers() repository.CustomerRepository   { return s.customers }
func (s *Store) Branches() repository.BranchRepository      { return s.branches }
func (s *Store) Employees() repository.EmployeeRepository   { return s.employees }
func (s *Store) Surcharges() repository.SurchargeRepository { return s.surcharges }
func (s *Store) Payments() repository.PaymentRepository     { return s.payments }
func (s *Store) Receipts() repository.ReceiptRepository     { return s.receipts }

// WithinTx runs fn against a Store bound to one transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
