package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type employeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employee (fullname, birthdate, gender, phone, email, address, salary, branchid, isdeleted)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING employeeid`
	return r.db.QueryRowContext(ctx, query,
		e.FullName, dateArg(e.BirthDate), strArg(e.Gender), strArg(e.Phone), strArg(e.Email),
		strArg(e.Address), e.Salary, e.BranchID, e.IsDeleted,
	).Scan(&e.ID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	e := &domain.Employee{}
	var birth sql.NullTime
	var gender, phone, email, address sql.NullString
	var salary sql.NullFloat64
	var branchID sql.NullInt32
	var isDeleted sql.NullBool
	query := `SELECT employeeid, fullname, birthdate, gender, phone, email, address, salary, branchid, isdeleted
	          FROM employee WHERE employeeid = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.FullName, &birth, &gender, &phone, &email, &address, &salary, &branchID, &isDeleted)
	if err != nil {
		return nil, err
	}
	e.BirthDate = dateString(birth)
	e.Gender = gender.String
	e.Phone = phone.String
	e.Email = email.String
	e.Address = address.String
	e.Salary = salary.Float64
	if branchID.Valid {
		v := branchID.Int32
		e.BranchID = &v
	}
	e.IsDeleted = isDeleted.Bool
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT employeeid, fullname, birthdate, gender, phone, email, address, salary, branchid, isdeleted
	          FROM employee ORDER BY employeeid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var birth sql.NullTime
		var gender, phone, email, address sql.NullString
		var salary sql.NullFloat64
		var branchID sql.NullInt32
		var isDeleted sql.NullBool
		if err := rows.Scan(&e.ID, &e.FullName, &birth, &gender, &phone, &email, &address, &salary, &branchID, &isDeleted); err != nil {
			return nil, err
		}
		e.BirthDate = dateString(birth)
		e.Gender = gender.String
		e.Phone = phone.String
		e.Email = email.String
		e.Address = address.String
		e.Salary = salary.Float64
		if branchID.Valid {
			v := branchID.Int32
			e.BranchID = &v
		}
		e.IsDeleted = isDeleted.Bool
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employee SET fullname=$1, birthdate=$2, gender=$3, phone=$4, email=$5, address=$6, salary=$7, branchid=$8, isdeleted=$9
	          WHERE employeeid=$10`
	_, err := r.db.ExecContext(ctx, query,
		e.FullName, dateArg(e.BirthDate), strArg(e.Gender), strArg(e.Phone), strArg(e.Email),
		strArg(e.Address), e.Salary, e.BranchID, e.IsDeleted, e.ID)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employee WHERE employeeid=$1`, id)
	return err
}
