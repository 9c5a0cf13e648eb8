package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const detailsColumns = `
	a.id, a.vehicle_id, a.user_id, a.start_date, a.end_date, a.status, a.created_at, a.updated_at,
	v.make, v.model, v.year, v.license_plate, v.status,
	COALESCE(u.name, ''), u.email, u.role`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.DriverAssignment, error) {
	query := `INSERT INTO driver_assignments (vehicle_id, user_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, vehicle_id, user_id, start_date, end_date, status, created_at, updated_at`

	var endDate interface{}
	if assignmentModifyEntity.EndDate != nil && assignmentModifyEntity.EndDate.Valid {
		endDate = assignmentModifyEntity.EndDate.Time
	}

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentModifyEntity.VehicleID,
		assignmentModifyEntity.UserID,
		assignmentModifyEntity.StartDate,
		endDate,
		assignmentModifyEntity.Status,
	).Scan(
		&assignmentDB.ID,
		&assignmentDB.VehicleID,
		&assignmentDB.UserID,
		&assignmentDB.StartDate,
		&assignmentDB.EndDate,
		&assignmentDB.Status,
		&assignmentDB.CreatedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		// частичный уникальный индекс по (vehicle_id) WHERE status='active'
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrVehicleAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DriverAssignment, error) {
	query := `SELECT id, vehicle_id, user_id, start_date, end_date, status, created_at, updated_at
		FROM driver_assignments
		WHERE id = $1`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&assignmentDB.ID,
			&assignmentDB.VehicleID,
			&assignmentDB.UserID,
			&assignmentDB.StartDate,
			&assignmentDB.EndDate,
			&assignmentDB.Status,
			&assignmentDB.CreatedAt,
			&assignmentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository getbyid error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) GetDetails(ctx context.Context, id int64) (*entities.AssignmentDetails, error) {
	query := `SELECT` + detailsColumns + `
		FROM driver_assignments a
		JOIN vehicles v ON v.id = a.vehicle_id
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1`

	var detailsDB AssignmentDetailsDB
	err := scanDetails(r.querier.QueryRow(ctx, query, id), &detailsDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository getdetails error: %w", err)
	}

	return ToDetailsDomain(&detailsDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error) {
	builder := qb.
		Select(
			"a.id", "a.vehicle_id", "a.user_id", "a.start_date", "a.end_date", "a.status", "a.created_at", "a.updated_at",
			"v.make", "v.model", "v.year", "v.license_plate", "v.status",
			"COALESCE(u.name, '')", "u.email", "u.role",
		).
		From("driver_assignments a").
		Join("vehicles v ON v.id = a.vehicle_id").
		Join("users u ON u.id = a.user_id").
		OrderBy("a.created_at DESC")

	// опциональные фильтры
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"a.user_id": *filter.UserID})
	}
	if filter.VehicleID != nil {
		builder = builder.Where(sq.Eq{"a.vehicle_id": *filter.VehicleID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"a.status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getall error: %w", err)
	}
	defer rows.Close()

	detailsModels := make([]AssignmentDetailsDB, 0, 8)
	for rows.Next() {
		var detailsDB AssignmentDetailsDB
		err := scanDetails(rows, &detailsDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository getall error: %w", err)
		}
		detailsModels = append(detailsModels, detailsDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getall error: %w", err)
	}

	return ToDetailsDomainList(detailsModels), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.DriverAssignment, error) {
	builder := qb.
		Update("driver_assignments")

	// опционнные поля
	if assignmentModifyEntity.Status != nil {
		builder = builder.Set("status", assignmentModifyEntity.Status.String())
	}
	if assignmentModifyEntity.EndDate != nil {
		if assignmentModifyEntity.EndDate.Valid {
			builder = builder.Set("end_date", assignmentModifyEntity.EndDate.Time)
		} else {
			// явный null сбрасывает дату завершения
			builder = builder.Set("end_date", nil)
		}
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentModifyEntity.ID}).
		Suffix("RETURNING id, vehicle_id, user_id, start_date, end_date, status, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	var assignmentDB AssignmentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&assignmentDB.ID,
			&assignmentDB.VehicleID,
			&assignmentDB.UserID,
			&assignmentDB.StartDate,
			&assignmentDB.EndDate,
			&assignmentDB.Status,
			&assignmentDB.CreatedAt,
			&assignmentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrVehicleAlreadyAssigned
		}

		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM driver_assignments WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// GetVehicleForAssignment читает машину с блокировкой строки, чтобы
// последовательность проверка->вставка внутри транзакции не гонялась
// с конкурентным созданием назначения на ту же машину.
func (r *Repository) GetVehicleForAssignment(ctx context.Context, vehicleID int64) (*entities.Vehicle, error) {
	query := `SELECT id, name, make, model, year, license_plate, vin, status, fuel_type, mileage,
			last_service_date, next_service_date, purchase_date, purchase_price, created_at, updated_at
		FROM vehicles
		WHERE id = $1
		FOR UPDATE`

	var vehicleEntity entities.Vehicle
	var status string
	err := r.querier.QueryRow(ctx, query, vehicleID).
		Scan(
			&vehicleEntity.ID,
			&vehicleEntity.Name,
			&vehicleEntity.Make,
			&vehicleEntity.Model,
			&vehicleEntity.Year,
			&vehicleEntity.LicensePlate,
			&vehicleEntity.VIN,
			&status,
			&vehicleEntity.FuelType,
			&vehicleEntity.Mileage,
			&vehicleEntity.LastServiceDate,
			&vehicleEntity.NextServiceDate,
			&vehicleEntity.PurchaseDate,
			&vehicleEntity.PurchasePrice,
			&vehicleEntity.CreatedAt,
			&vehicleEntity.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrVehicleNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository get vehicle error: %w", err)
	}

	vehicleEntity.Status = entities.VehicleStatusType(status)
	return &vehicleEntity, nil
}

func (r *Repository) GetUserForAssignment(ctx context.Context, userID int64) (*entities.UserRef, error) {
	query := `SELECT id, COALESCE(name, ''), email, role
		FROM users
		WHERE id = $1`

	var userRef entities.UserRef
	var role string
	err := r.querier.QueryRow(ctx, query, userID).
		Scan(
			&userRef.ID,
			&userRef.Name,
			&userRef.Email,
			&role,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository get user error: %w", err)
	}

	userRef.Role = entities.RoleType(role)
	return &userRef, nil
}

func (r *Repository) CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	query := `SELECT COUNT(*)
		FROM driver_assignments
		WHERE vehicle_id = $1 AND status = 'active'`

	var count int64
	err := r.querier.QueryRow(ctx, query, vehicleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count active error: %w", err)
	}

	return count, nil
}

func scanDetails(row pgx.Row, detailsDB *AssignmentDetailsDB) error {
	return row.Scan(
		&detailsDB.ID,
		&detailsDB.VehicleID,
		&detailsDB.UserID,
		&detailsDB.StartDate,
		&detailsDB.EndDate,
		&detailsDB.Status,
		&detailsDB.CreatedAt,
		&detailsDB.UpdatedAt,
		&detailsDB.VehicleMake,
		&detailsDB.VehicleModel,
		&detailsDB.VehicleYear,
		&detailsDB.VehicleLicensePlate,
		&detailsDB.VehicleStatus,
		&detailsDB.UserName,
		&detailsDB.UserEmail,
		&detailsDB.UserRole,
	)
}
