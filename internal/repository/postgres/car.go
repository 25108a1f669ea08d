package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type carRepository struct {
	db DBTX
}

func NewCarRepository(db DBTX) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO car (licenseplate, dailyrate, hourlyrate, status)
	          VALUES ($1, $2, $3, $4) RETURNING carid`
	return r.db.QueryRowContext(ctx, query, car.LicensePlate, car.DailyRate, car.HourlyRate, string(car.Status)).Scan(&car.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT carid, licenseplate, dailyrate, hourlyrate, status FROM car WHERE carid = $1`
	return r.scanCar(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate locks the car row until the surrounding transaction
// ends, serializing availability-check + status-flip on the same car.
func (r *carRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT carid, licenseplate, dailyrate, hourlyrate, status FROM car WHERE carid = $1 FOR UPDATE`
	return r.scanCar(r.db.QueryRowContext(ctx, query, id))
}

func (r *carRepository) scanCar(row *sql.Row) (*domain.Car, error) {
	car := &domain.Car{}
	var daily, hourly sql.NullFloat64
	var status sql.NullString
	if err := row.Scan(&car.ID, &car.LicensePlate, &daily, &hourly, &status); err != nil {
		return nil, err
	}
	car.DailyRate = daily.Float64
	car.HourlyRate = hourly.Float64
	car.Status = domain.CarStatus(status.String)
	return car, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT carid, licenseplate, dailyrate, hourlyrate, status FROM car ORDER BY carid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		var daily, hourly sql.NullFloat64
		var status sql.NullString
		if err := rows.Scan(&car.ID, &car.LicensePlate, &daily, &hourly, &status); err != nil {
			return nil, err
		}
		car.DailyRate = daily.Float64
		car.HourlyRate = hourly.Float64
		car.Status = domain.CarStatus(status.String)
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE car SET licenseplate=$1, dailyrate=$2, hourlyrate=$3, status=$4 WHERE carid=$5`
	_, err := r.db.ExecContext(ctx, query, car.LicensePlate, car.DailyRate, car.HourlyRate, string(car.Status), car.ID)
	return err
}

func (r *carRepository) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE car SET status=$1 WHERE carid=$2`, string(status), id)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM car WHERE carid=$1`, id)
	return err
}
