package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type contractRepository struct {
	db DBTX
}

func NewContractRepository(db DBTX) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contract (customerid, startdate, enddate, totalamount, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING contractid`
	return r.db.QueryRowContext(ctx, query,
		c.CustomerID, dateArg(c.StartDate), dateArg(c.EndDate), c.TotalAmount, string(c.Status), strArg(c.Notes),
	).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	c := &domain.Contract{}
	var start, end sql.NullTime
	var total sql.NullFloat64
	var status, notes sql.NullString
	query := `SELECT contractid, customerid, startdate, enddate, totalamount, status, notes
	          FROM contract WHERE contractid = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.CustomerID, &start, &end, &total, &status, &notes)
	if err != nil {
		return nil, err
	}
	c.StartDate = dateString(start)
	c.EndDate = dateString(end)
	c.TotalAmount = total.Float64
	c.Status = domain.ContractStatus(status.String)
	c.Notes = notes.String
	return c, nil
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	query := `SELECT contractid, customerid, startdate, enddate, totalamount, status, notes
	          FROM contract ORDER BY contractid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		var start, end sql.NullTime
		var total sql.NullFloat64
		var status, notes sql.NullString
		if err := rows.Scan(&c.ID, &c.CustomerID, &start, &end, &total, &status, &notes); err != nil {
			return nil, err
		}
		c.StartDate = dateString(start)
		c.EndDate = dateString(end)
		c.TotalAmount = total.Float64
		c.Status = domain.ContractStatus(status.String)
		c.Notes = notes.String
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contract SET customerid=$1, startdate=$2, enddate=$3, totalamount=$4, status=$5, notes=$6
	          WHERE contractid=$7`
	_, err := r.db.ExecContext(ctx, query,
		c.CustomerID, dateArg(c.StartDate), dateArg(c.EndDate), c.TotalAmount, string(c.Status), strArg(c.Notes), c.ID)
	return err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE contract SET status=$1 WHERE contractid=$2`, string(status), id)
	return err
}

func (r *contractRepository) UpdateTotalAmount(ctx context.Context, id int32, total float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE contract SET totalamount=$1 WHERE contractid=$2`, total, id)
	return err
}

// Delete removes the header and cascades to the owned line items. Payments
// and receipts are audit rows and stay behind.
func (r *contractRepository) Delete(ctx context.Context, id int32) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contractcar WHERE contractid=$1`, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contractsurcharge WHERE contractid=$1`, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM contract WHERE contractid=$1`, id)
	return err
}

func (r *contractRepository) AddCar(ctx context.Context, cc *domain.ContractCar) error {
	query := `INSERT INTO contractcar (contractid, carid, dailyrate, amount)
	          VALUES ($1, $2, $3, $4) RETURNING contractcarid`
	return r.db.QueryRowContext(ctx, query, cc.ContractID, cc.CarID, cc.DailyRate, cc.Amount).Scan(&cc.ID)
}

func (r *contractRepository) ListCars(ctx context.Context, contractID int32) ([]domain.ContractCar, error) {
	query := `SELECT contractcarid, contractid, carid, dailyrate, amount, returnmileage, carcondition
	          FROM contractcar WHERE contractid = $1 ORDER BY contractcarid`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.ContractCar
	for rows.Next() {
		var cc domain.ContractCar
		var rate, amount sql.NullFloat64
		var mileage sql.NullInt32
		var condition sql.NullString
		if err := rows.Scan(&cc.ID, &cc.ContractID, &cc.CarID, &rate, &amount, &mileage, &condition); err != nil {
			return nil, err
		}
		cc.DailyRate = rate.Float64
		cc.Amount = amount.Float64
		if mileage.Valid {
			v := mileage.Int32
			cc.ReturnMileage = &v
		}
		cc.CarCondition = condition.String
		cars = append(cars, cc)
	}
	return cars, rows.Err()
}

func (r *contractRepository) AddSurcharge(ctx context.Context, cs *domain.ContractSurcharge) error {
	query := `INSERT INTO contractsurcharge (contractid, surchargeid, unitprice, quantity)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, cs.ContractID, cs.SurchargeID, cs.UnitPrice, cs.Quantity)
	return err
}

func (r *contractRepository) ListSurcharges(ctx context.Context, contractID int32) ([]domain.ContractSurcharge, error) {
	query := `SELECT contractid, surchargeid, unitprice, quantity
	          FROM contractsurcharge WHERE contractid = $1 ORDER BY surchargeid`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surcharges []domain.ContractSurcharge
	for rows.Next() {
		var cs domain.ContractSurcharge
		var price sql.NullFloat64
		var qty sql.NullInt32
		if err := rows.Scan(&cs.ContractID, &cs.SurchargeID, &price, &qty); err != nil {
			return nil, err
		}
		cs.UnitPrice = price.Float64
		cs.Quantity = qty.Int32
		surcharges = append(surcharges, cs)
	}
	return surcharges, rows.Err()
}

// FindBlockingContract runs the closed-interval overlap test
// (s1 <= e2 AND s2 <= e1) in SQL. Cancelled contracts never block. A NULL
// bound on either side is treated as unbounded, so open-ended bookings
// conservatively block.
func (r *contractRepository) FindBlockingContract(ctx context.Context, carID int32, startDate, endDate string, excludeID int32) (int32, error) {
	query := `SELECT c.contractid
	          FROM contract c
	          JOIN contractcar cc ON cc.contractid = c.contractid
	          WHERE cc.carid = $1
	            AND c.contractid <> $2
	            AND LOWER(COALESCE(c.status, '')) NOT IN ('canceled', 'cancelled')
	            AND (c.startdate IS NULL OR $4::date IS NULL OR c.startdate <= $4::date)
	            AND (c.enddate IS NULL OR $3::date IS NULL OR c.enddate >= $3::date)
	          ORDER BY c.contractid
	          LIMIT 1`
	var blocking int32
	err := r.db.QueryRowContext(ctx, query, carID, excludeID, dateArg(startDate), dateArg(endDate)).Scan(&blocking)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return blocking, nil
}
