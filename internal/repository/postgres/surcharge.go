package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type surchargeRepository struct {
	db DBTX
}

func NewSurchargeRepository(db DBTX) repository.SurchargeRepository {
	return &surchargeRepository{db: db}
}

func (r *surchargeRepository) Create(ctx context.Context, s *domain.Surcharge) error {
	query := `INSERT INTO surcharge (surchargename, unitprice, description) VALUES ($1, $2, $3) RETURNING surchargeid`
	return r.db.QueryRowContext(ctx, query, s.SurchargeName, s.UnitPrice, strArg(s.Description)).Scan(&s.ID)
}

func (r *surchargeRepository) GetByID(ctx context.Context, id int32) (*domain.Surcharge, error) {
	s := &domain.Surcharge{}
	var name, desc sql.NullString
	var price sql.NullFloat64
	query := `SELECT surchargeid, surchargename, unitprice, description FROM surcharge WHERE surchargeid = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &name, &price, &desc); err != nil {
		return nil, err
	}
	s.SurchargeName = name.String
	s.UnitPrice = price.Float64
	s.Description = desc.String
	return s, nil
}

func (r *surchargeRepository) List(ctx context.Context) ([]domain.Surcharge, error) {
	query := `SELECT surchargeid, surchargename, unitprice, description FROM surcharge ORDER BY surchargeid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surcharges []domain.Surcharge
	for rows.Next() {
		var s domain.Surcharge
		var name, desc sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&s.ID, &name, &price, &desc); err != nil {
			return nil, err
		}
		s.SurchargeName = name.String
		s.UnitPrice = price.Float64
		s.Description = desc.String
		surcharges = append(surcharges, s)
	}
	return surcharges, rows.Err()
}

func (r *surchargeRepository) Update(ctx context.Context, s *domain.Surcharge) error {
	query := `UPDATE surcharge SET surchargename=$1, unitprice=$2, description=$3 WHERE surchargeid=$4`
	_, err := r.db.ExecContext(ctx, query, s.SurchargeName, s.UnitPrice, strArg(s.Description), s.ID)
	return err
}

func (r *surchargeRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM surcharge WHERE surchargeid=$1`, id)
	return err
}
