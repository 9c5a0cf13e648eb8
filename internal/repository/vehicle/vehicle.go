package vehicle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/vehicle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vehicleColumns = `id, name, make, model, year, license_plate, vin, status, fuel_type, mileage,
	last_service_date, next_service_date, purchase_date, purchase_price, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)
	query := `INSERT INTO vehicles (name, make, model, year, license_plate, vin, status, fuel_type, mileage,
			last_service_date, next_service_date, purchase_date, purchase_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, ''), COALESCE($9, 0), $10, $11, $12, COALESCE($13, 0))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleModifyModel.Name,
		vehicleModifyModel.Make,
		vehicleModifyModel.Model,
		vehicleModifyModel.Year,
		vehicleModifyModel.LicensePlate,
		vehicleModifyModel.VIN,
		vehicleModifyModel.Status,
		vehicleModifyModel.FuelType,
		vehicleModifyModel.Mileage,
		vehicleModifyModel.LastServiceDate,
		vehicleModifyModel.NextServiceDate,
		vehicleModifyModel.PurchaseDate,
		vehicleModifyModel.PurchasePrice,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, vehicle.ErrConflict
		}
		return 0, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Update("vehicles")

	// опционнные поля
	if vehicleModifyModel.Name != nil {
		builder = builder.Set("name", vehicleModifyModel.Name)
	}
	if vehicleModifyModel.Make != nil {
		builder = builder.Set("make", vehicleModifyModel.Make)
	}
	if vehicleModifyModel.Model != nil {
		builder = builder.Set("model", vehicleModifyModel.Model)
	}
	if vehicleModifyModel.Year != nil {
		builder = builder.Set("year", vehicleModifyModel.Year)
	}
	if vehicleModifyModel.LicensePlate != nil {
		builder = builder.Set("license_plate", vehicleModifyModel.LicensePlate)
	}
	if vehicleModifyModel.VIN != nil {
		builder = builder.Set("vin", vehicleModifyModel.VIN)
	}
	if vehicleModifyModel.Status != nil {
		builder = builder.Set("status", vehicleModifyModel.Status)
	}
	if vehicleModifyModel.FuelType != nil {
		builder = builder.Set("fuel_type", vehicleModifyModel.FuelType)
	}
	if vehicleModifyModel.Mileage != nil {
		builder = builder.Set("mileage", vehicleModifyModel.Mileage)
	}
	if vehicleModifyModel.LastServiceDate != nil {
		builder = builder.Set("last_service_date", vehicleModifyModel.LastServiceDate)
	}
	if vehicleModifyModel.NextServiceDate != nil {
		builder = builder.Set("next_service_date", vehicleModifyModel.NextServiceDate)
	}
	if vehicleModifyModel.PurchaseDate != nil {
		builder = builder.Set("purchase_date", vehicleModifyModel.PurchaseDate)
	}
	if vehicleModifyModel.PurchasePrice != nil {
		builder = builder.Set("purchase_price", vehicleModifyModel.PurchasePrice)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": vehicleModifyModel.ID}).
		Suffix("RETURNING " + vehicleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	var vehicleDB VehicleDB
	err = scanVehicle(r.querier.QueryRow(ctx, query, args...), &vehicleDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, vehicle.ErrConflict
		}

		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	return ToDomain(&vehicleDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1`

	var vehicleDB VehicleDB
	err := scanVehicle(r.querier.QueryRow(ctx, query, id), &vehicleDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(&vehicleDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
	FROM vehicles
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]VehicleDB, 0, 8)
	for rows.Next() {
		var vehicleDB VehicleDB
		err := scanVehicle(rows, &vehicleDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
		}
		vehicleModels = append(vehicleModels, vehicleDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		// машина с назначениями/поездками/обслуживанием не удаляется
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return vehicle.ErrConflict
		}
		return fmt.Errorf("unexpected vehicle repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *Repository) UpdateMileageIfGreater(ctx context.Context, id int64, mileage int64) (*entities.Vehicle, error) {
	query := `UPDATE vehicles
		SET mileage = $2,
			updated_at = NOW()
		WHERE id = $1 AND mileage < $2
		RETURNING ` + vehicleColumns

	var vehicleDB VehicleDB
	err := scanVehicle(r.querier.QueryRow(ctx, query, id, mileage), &vehicleDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// либо машины нет, либо показание не новее текущего
			return r.GetByID(ctx, id)
		}

		return nil, fmt.Errorf("unexpected vehicle repository update mileage error: %w", err)
	}

	return ToDomain(&vehicleDB), nil
}

func (r *Repository) UpdateMaintenanceWhereServiceOverdue(ctx context.Context) (int64, error) {
	query := `UPDATE vehicles
		SET status = 'maintenance',
			updated_at = NOW()
		WHERE status = 'active'
		  AND next_service_date IS NOT NULL
		  AND next_service_date < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected vehicle repository flag overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanVehicle(row pgx.Row, vehicleDB *VehicleDB) error {
	return row.Scan(
		&vehicleDB.ID,
		&vehicleDB.Name,
		&vehicleDB.Make,
		&vehicleDB.Model,
		&vehicleDB.Year,
		&vehicleDB.LicensePlate,
		&vehicleDB.VIN,
		&vehicleDB.Status,
		&vehicleDB.FuelType,
		&vehicleDB.Mileage,
		&vehicleDB.LastServiceDate,
		&vehicleDB.NextServiceDate,
		&vehicleDB.PurchaseDate,
		&vehicleDB.PurchasePrice,
		&vehicleDB.CreatedAt,
		&vehicleDB.UpdatedAt,
	)
}
