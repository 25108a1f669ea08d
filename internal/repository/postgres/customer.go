package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, cust *domain.Customer) error {
	query := `INSERT INTO customer (fullname, phone, email, address, citizenid, registrationdate, isdeleted)
	          VALUES ($1, $2, $3, $4, $5, COALESCE($6::date, CURRENT_DATE), $7) RETURNING customerid`
	return r.db.QueryRowContext(ctx, query,
		cust.FullName, strArg(cust.Phone), strArg(cust.Email), strArg(cust.Address),
		strArg(cust.CitizenID), dateArg(cust.RegistrationDate), cust.IsDeleted,
	).Scan(&cust.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	cust := &domain.Customer{}
	var phone, email, address, citizenID sql.NullString
	var regDate sql.NullTime
	var isDeleted sql.NullBool
	query := `SELECT customerid, fullname, phone, email, address, citizenid, registrationdate, isdeleted
	          FROM customer WHERE customerid = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cust.ID, &cust.FullName, &phone, &email, &address, &citizenID, &regDate, &isDeleted)
	if err != nil {
		return nil, err
	}
	cust.Phone = phone.String
	cust.Email = email.String
	cust.Address = address.String
	cust.CitizenID = citizenID.String
	cust.RegistrationDate = dateString(regDate)
	cust.IsDeleted = isDeleted.Bool
	return cust, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT customerid, fullname, phone, email, address, citizenid, registrationdate, isdeleted
	          FROM customer ORDER BY customerid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var cust domain.Customer
		var phone, email, address, citizenID sql.NullString
		var regDate sql.NullTime
		var isDeleted sql.NullBool
		if err := rows.Scan(&cust.ID, &cust.FullName, &phone, &email, &address, &citizenID, &regDate, &isDeleted); err != nil {
			return nil, err
		}
		cust.Phone = phone.String
		cust.Email = email.String
		cust.Address = address.String
		cust.CitizenID = citizenID.String
		cust.RegistrationDate = dateString(regDate)
		cust.IsDeleted = isDeleted.Bool
		customers = append(customers, cust)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, cust *domain.Customer) error {
	query := `UPDATE customer SET fullname=$1, phone=$2, email=$3, address=$4, citizenid=$5, isdeleted=$6
	          WHERE customerid=$7`
	_, err := r.db.ExecContext(ctx, query,
		cust.FullName, strArg(cust.Phone), strArg(cust.Email), strArg(cust.Address),
		strArg(cust.CitizenID), cust.IsDeleted, cust.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE customerid=$1`, id)
	return err
}
