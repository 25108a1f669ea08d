package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type branchRepository struct {
	db DBTX
}

func NewBranchRepository(db DBTX) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, b *domain.Branch) error {
	query := `INSERT INTO branch (branchname, address, phone) VALUES ($1, $2, $3) RETURNING branchid`
	return r.db.QueryRowContext(ctx, query, b.BranchName, strArg(b.Address), strArg(b.Phone)).Scan(&b.ID)
}

func (r *branchRepository) GetByID(ctx context.Context, id int32) (*domain.Branch, error) {
	query := `SELECT branchid, branchname, address, phone FROM branch WHERE branchid = $1`
	return r.scanBranch(r.db.QueryRowContext(ctx, query, id))
}

func (r *branchRepository) GetByName(ctx context.Context, name string) (*domain.Branch, error) {
	query := `SELECT branchid, branchname, address, phone FROM branch WHERE LOWER(branchname) = LOWER($1)`
	return r.scanBranch(r.db.QueryRowContext(ctx, query, name))
}

func (r *branchRepository) scanBranch(row *sql.Row) (*domain.Branch, error) {
	b := &domain.Branch{}
	var address, phone sql.NullString
	if err := row.Scan(&b.ID, &b.BranchName, &address, &phone); err != nil {
		return nil, err
	}
	b.Address = address.String
	b.Phone = phone.String
	return b, nil
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	query := `SELECT branchid, branchname, address, phone FROM branch ORDER BY branchid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		var address, phone sql.NullString
		if err := rows.Scan(&b.ID, &b.BranchName, &address, &phone); err != nil {
			return nil, err
		}
		b.Address = address.String
		b.Phone = phone.String
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *branchRepository) Update(ctx context.Context, b *domain.Branch) error {
	query := `UPDATE branch SET branchname=$1, address=$2, phone=$3 WHERE branchid=$4`
	_, err := r.db.ExecContext(ctx, query, b.BranchName, strArg(b.Address), strArg(b.Phone), b.ID)
	return err
}

func (r *branchRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM branch WHERE branchid=$1`, id)
	return err
}
