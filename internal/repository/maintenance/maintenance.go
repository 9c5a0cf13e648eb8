package maintenance

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/maintenance"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const maintenanceColumns = `id, vehicle_id, type, description, cost, mileage, service_date, serviced_by, notes, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceRecord, error) {
	maintenanceModifyModel := FromDomainModify(&maintenanceModifyEntity)
	query := `INSERT INTO maintenance_records (vehicle_id, type, description, cost, mileage, service_date, serviced_by, notes)
		VALUES ($1, $2, $3, $4, COALESCE($5, 0), $6, COALESCE($7, ''), $8)
		RETURNING ` + maintenanceColumns

	var recordDB MaintenanceRecordDB
	err := r.querier.QueryRow(
		ctx,
		query,
		maintenanceModifyModel.VehicleID,
		maintenanceModifyModel.Type,
		maintenanceModifyModel.Description,
		maintenanceModifyModel.Cost,
		maintenanceModifyModel.Mileage,
		maintenanceModifyModel.ServiceDate,
		maintenanceModifyModel.ServicedBy,
		maintenanceModifyModel.Notes,
	).Scan(
		&recordDB.ID,
		&recordDB.VehicleID,
		&recordDB.Type,
		&recordDB.Description,
		&recordDB.Cost,
		&recordDB.Mileage,
		&recordDB.ServiceDate,
		&recordDB.ServicedBy,
		&recordDB.Notes,
		&recordDB.CreatedAt,
		&recordDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, maintenance.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected maintenance repository create error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

func (r *Repository) Update(ctx context.Context, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceRecord, error) {
	maintenanceModifyModel := FromDomainModify(&maintenanceModifyEntity)

	builder := qb.
		Update("maintenance_records")

	// опционнные поля
	if maintenanceModifyModel.Type != nil {
		builder = builder.Set("type", maintenanceModifyModel.Type)
	}
	if maintenanceModifyModel.Description != nil {
		builder = builder.Set("description", maintenanceModifyModel.Description)
	}
	if maintenanceModifyModel.Cost != nil {
		builder = builder.Set("cost", maintenanceModifyModel.Cost)
	}
	if maintenanceModifyModel.Mileage != nil {
		builder = builder.Set("mileage", maintenanceModifyModel.Mileage)
	}
	if maintenanceModifyModel.ServiceDate != nil {
		builder = builder.Set("service_date", maintenanceModifyModel.ServiceDate)
	}
	if maintenanceModifyModel.ServicedBy != nil {
		builder = builder.Set("serviced_by", maintenanceModifyModel.ServicedBy)
	}
	if maintenanceModifyModel.Notes != nil {
		builder = builder.Set("notes", maintenanceModifyModel.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": maintenanceModifyModel.ID}).
		Suffix("RETURNING " + maintenanceColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected maintenance repository update error: %w", err)
	}

	var recordDB MaintenanceRecordDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&recordDB.ID,
			&recordDB.VehicleID,
			&recordDB.Type,
			&recordDB.Description,
			&recordDB.Cost,
			&recordDB.Mileage,
			&recordDB.ServiceDate,
			&recordDB.ServicedBy,
			&recordDB.Notes,
			&recordDB.CreatedAt,
			&recordDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, maintenance.ErrRecordNotFound
		}

		return nil, fmt.Errorf("unexpected maintenance repository update error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

func (r *Repository) GetAll(ctx context.Context, vehicleID *int64) ([]entities.MaintenanceRecord, error) {
	query := `
	SELECT ` + maintenanceColumns + `
	FROM maintenance_records
	WHERE ($1::bigint IS NULL OR vehicle_id = $1)
	ORDER BY service_date DESC`

	rows, err := r.querier.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]MaintenanceRecordDB, 0, 8)
	for rows.Next() {
		var recordDB MaintenanceRecordDB
		err := rows.Scan(
			&recordDB.ID,
			&recordDB.VehicleID,
			&recordDB.Type,
			&recordDB.Description,
			&recordDB.Cost,
			&recordDB.Mileage,
			&recordDB.ServiceDate,
			&recordDB.ServicedBy,
			&recordDB.Notes,
			&recordDB.CreatedAt,
			&recordDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
		}
		recordModels = append(recordModels, recordDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}

	return ToDomainList(recordModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM maintenance_records WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected maintenance repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return maintenance.ErrRecordNotFound
	}

	return nil
}
