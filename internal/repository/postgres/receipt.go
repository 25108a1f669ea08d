package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type receiptRepository struct {
	db DBTX
}

func NewReceiptRepository(db DBTX) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateDelivery(ctx context.Context, rec *domain.DeliveryReceipt) error {
	query := `INSERT INTO deliveryreceipt (contractid, reference, deliveryemployeeid, receiveremployeeid, deliverydate, carconditionatdelivery, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING deliveryid`
	return r.db.QueryRowContext(ctx, query,
		rec.ContractID, rec.Reference, rec.DeliveryEmployeeID, rec.ReceiverEmployeeID,
		dateArg(rec.DeliveryDate), strArg(rec.CarConditionAtDelivery), strArg(rec.Notes),
	).Scan(&rec.ID)
}

func (r *receiptRepository) CreateReturn(ctx context.Context, rec *domain.ReturnReceipt) error {
	query := `INSERT INTO returnreceipt (contractid, reference, receiveremployeeid, receiverbranchid, returndate, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING returnid`
	return r.db.QueryRowContext(ctx, query,
		rec.ContractID, rec.Reference, rec.ReceiverEmployeeID, rec.ReceiverBranchID,
		dateArg(rec.ReturnDate), strArg(rec.Notes),
	).Scan(&rec.ID)
}

func (r *receiptRepository) HasReturnReceipt(ctx context.Context, contractID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM returnreceipt WHERE contractid = $1)`
	if err := r.db.QueryRowContext(ctx, query, contractID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *receiptRepository) ListReturnsByContract(ctx context.Context, contractID int32) ([]domain.ReturnReceipt, error) {
	query := `SELECT returnid, contractid, reference, receiveremployeeid, receiverbranchid, returndate, notes
	          FROM returnreceipt WHERE contractid = $1 ORDER BY returnid`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.ReturnReceipt
	for rows.Next() {
		var rec domain.ReturnReceipt
		var empID, branchID sql.NullInt32
		var date sql.NullTime
		var notes sql.NullString
		if err := rows.Scan(&rec.ID, &rec.ContractID, &rec.Reference, &empID, &branchID, &date, &notes); err != nil {
			return nil, err
		}
		if empID.Valid {
			v := empID.Int32
			rec.ReceiverEmployeeID = &v
		}
		if branchID.Valid {
			v := branchID.Int32
			rec.ReceiverBranchID = &v
		}
		rec.ReturnDate = dateString(date)
		rec.Notes = notes.String
		receipts = append(receipts, rec)
	}
	return receipts, rows.Err()
}
