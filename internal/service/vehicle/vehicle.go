package vehicle

import (
	"context"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Vehicle struct {
	repository Repository
	guard      RoleGuard
	txManager  TxManager
}

func New(repository Repository, guard RoleGuard, txManager TxManager) *Vehicle {
	return &Vehicle{
		repository: repository,
		guard:      guard,
		txManager:  txManager,
	}
}

func (s *Vehicle) CreateVehicle(ctx context.Context, caller entities.Caller, vehicleModify entities.VehicleModify) (int64, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpVehicleCreate); err != nil {
		return 0, err
	}

	if vehicleModify.Name == nil ||
		vehicleModify.Make == nil ||
		vehicleModify.Model == nil ||
		vehicleModify.Year == nil ||
		vehicleModify.LicensePlate == nil ||
		vehicleModify.VIN == nil ||
		vehicleModify.Status == nil ||
		vehicleModify.PurchaseDate == nil {
		return 0, ErrMissingRequiredFields
	}

	if err := validateModify(&vehicleModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, vehicleModify)
	if err != nil {
		return 0, fmt.Errorf("create vehicle: %w", err)
	}

	return id, nil
}

func (s *Vehicle) UpdateVehicle(ctx context.Context, caller entities.Caller, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpVehicleUpdate); err != nil {
		return nil, err
	}

	if vehicleModify.ID == nil {
		return nil, ErrInvalidVehicleID
	}

	if vehicleModify.Name == nil &&
		vehicleModify.Make == nil &&
		vehicleModify.Model == nil &&
		vehicleModify.Year == nil &&
		vehicleModify.LicensePlate == nil &&
		vehicleModify.VIN == nil &&
		vehicleModify.Status == nil &&
		vehicleModify.FuelType == nil &&
		vehicleModify.Mileage == nil &&
		vehicleModify.LastServiceDate == nil &&
		vehicleModify.NextServiceDate == nil &&
		vehicleModify.PurchaseDate == nil &&
		vehicleModify.PurchasePrice == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(&vehicleModify); err != nil {
		return nil, err
	}

	vehicle, err := s.repository.Update(ctx, vehicleModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Vehicle) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	vehicle, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *Vehicle) GetVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	return vehicles, nil
}

func (s *Vehicle) DeleteVehicle(ctx context.Context, caller entities.Caller, id int64) error {
	if err := s.guard.Authorize(caller.Role, authz.OpVehicleDelete); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

// ProcessMileageUpdate применяет показание одометра из телеметрии.
// Пробег только растет: отстающие или дублирующиеся события игнорируются.
func (s *Vehicle) ProcessMileageUpdate(ctx context.Context, vehicleID int64, mileage int64) (*entities.Vehicle, error) {
	if mileage < 0 {
		return nil, ErrInvalidMileage
	}

	vehicle, err := s.repository.UpdateMileageIfGreater(ctx, vehicleID, mileage)
	if err != nil {
		return nil, fmt.Errorf("update mileage: %w", err)
	}
	return vehicle, nil
}

// FlagOverdueVehicles переводит машины с просроченным next_service_date
// из active в maintenance. Вызывается фоновой задачей.
func (s *Vehicle) FlagOverdueVehicles(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.UpdateMaintenanceWhereServiceOverdue(ctx)
	if err != nil {
		return 0, fmt.Errorf("flag overdue vehicles: %w", err)
	}

	return rowsAffected, nil
}

func validateModify(vehicleModify *entities.VehicleModify) error {
	if vehicleModify.Name != nil && !isValidName(*vehicleModify.Name) {
		return ErrInvalidName
	}
	if vehicleModify.Make != nil && !isValidName(*vehicleModify.Make) {
		return ErrInvalidName
	}
	if vehicleModify.Model != nil && !isValidName(*vehicleModify.Model) {
		return ErrInvalidName
	}
	if vehicleModify.LicensePlate != nil && !isValidName(*vehicleModify.LicensePlate) {
		return ErrInvalidName
	}
	if vehicleModify.VIN != nil && !isValidVIN(*vehicleModify.VIN) {
		return ErrInvalidVIN
	}
	if vehicleModify.Year != nil && !isValidYear(*vehicleModify.Year) {
		return ErrInvalidYear
	}
	if vehicleModify.Status != nil && !isValidStatus(vehicleModify.Status.String()) {
		return ErrInvalidStatus
	}
	if vehicleModify.Mileage != nil && *vehicleModify.Mileage < 0 {
		return ErrInvalidMileage
	}
	if vehicleModify.PurchasePrice != nil && *vehicleModify.PurchasePrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}
