package trip

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/service/trip"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tripColumns = `id, vehicle_id, driver_id, start_date, end_date, start_mileage, end_mileage, start_location, end_location, purpose, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (vehicle_id, driver_id, start_date, end_date, start_mileage, end_mileage, start_location, end_location, purpose, status)
		VALUES ($1, $2, $3, $4, COALESCE($5, 0), $6, $7, $8, $9, $10)
		RETURNING ` + tripColumns

	var tripDB TripDB
	err := scanTrip(r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.VehicleID,
		tripModifyModel.DriverID,
		tripModifyModel.StartDate,
		tripModifyModel.EndDate,
		tripModifyModel.StartMileage,
		tripModifyModel.EndMileage,
		tripModifyModel.StartLocation,
		tripModifyModel.EndLocation,
		tripModifyModel.Purpose,
		tripModifyModel.Status,
	), &tripDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) Update(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)

	builder := qb.
		Update("trips")

	// опционнные поля
	if tripModifyModel.VehicleID != nil {
		builder = builder.Set("vehicle_id", tripModifyModel.VehicleID)
	}
	if tripModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", tripModifyModel.DriverID)
	}
	if tripModifyModel.StartDate != nil {
		builder = builder.Set("start_date", tripModifyModel.StartDate)
	}
	if tripModifyModel.EndDate != nil {
		builder = builder.Set("end_date", tripModifyModel.EndDate)
	}
	if tripModifyModel.StartMileage != nil {
		builder = builder.Set("start_mileage", tripModifyModel.StartMileage)
	}
	if tripModifyModel.EndMileage != nil {
		builder = builder.Set("end_mileage", tripModifyModel.EndMileage)
	}
	if tripModifyModel.StartLocation != nil {
		builder = builder.Set("start_location", tripModifyModel.StartLocation)
	}
	if tripModifyModel.EndLocation != nil {
		builder = builder.Set("end_location", tripModifyModel.EndLocation)
	}
	if tripModifyModel.Purpose != nil {
		builder = builder.Set("purpose", tripModifyModel.Purpose)
	}
	if tripModifyModel.Status != nil {
		builder = builder.Set("status", tripModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": tripModifyModel.ID}).
		Suffix("RETURNING " + tripColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	var tripDB TripDB
	err = scanTrip(r.querier.QueryRow(ctx, query, args...), &tripDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1`

	var tripDB TripDB
	err := scanTrip(r.querier.QueryRow(ctx, query, id), &tripDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyid error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error) {
	builder := qb.
		Select(tripColumns).
		From("trips")

	if filter.VehicleID != nil {
		builder = builder.Where(sq.Eq{"vehicle_id": filter.VehicleID})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": filter.DriverID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("start_date DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripDB TripDB
		err := scanTrip(rows, &tripDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
		}
		tripModels = append(tripModels, tripDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

func scanTrip(row pgx.Row, tripDB *TripDB) error {
	return row.Scan(
		&tripDB.ID,
		&tripDB.VehicleID,
		&tripDB.DriverID,
		&tripDB.StartDate,
		&tripDB.EndDate,
		&tripDB.StartMileage,
		&tripDB.EndMileage,
		&tripDB.StartLocation,
		&tripDB.EndLocation,
		&tripDB.Purpose,
		&tripDB.Status,
		&tripDB.CreatedAt,
		&tripDB.UpdatedAt,
	)
}
