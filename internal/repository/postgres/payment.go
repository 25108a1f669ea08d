package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.ContractPayment) error {
	query := `INSERT INTO contractpayment (contractid, reference, paymentmethod, amount, paymentdate, notes)
	          VALUES ($1, $2, $3, $4, COALESCE($5::date, CURRENT_DATE), $6) RETURNING paymentid`
	return r.db.QueryRowContext(ctx, query,
		p.ContractID, p.Reference, p.PaymentMethod, p.Amount, dateArg(p.PaymentDate), strArg(p.Notes),
	).Scan(&p.ID)
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.ContractPayment, error) {
	query := `SELECT paymentid, contractid, reference, paymentmethod, amount, paymentdate, notes
	          FROM contractpayment WHERE contractid = $1 ORDER BY paymentid`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.ContractPayment
	for rows.Next() {
		var p domain.ContractPayment
		var method, notes sql.NullString
		var amount sql.NullFloat64
		var date sql.NullTime
		if err := rows.Scan(&p.ID, &p.ContractID, &p.Reference, &method, &amount, &date, &notes); err != nil {
			return nil, err
		}
		p.PaymentMethod = method.String
		p.Amount = amount.Float64
		p.PaymentDate = dateString(date)
		p.Notes = notes.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
