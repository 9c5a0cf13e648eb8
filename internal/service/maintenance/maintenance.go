package maintenance

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
	vehicleservice "fleet/internal/service/vehicle"
)

type Maintenance struct {
	repository     Repository
	vehicleService VehicleService
	guard          RoleGuard
}

func New(repository Repository, vehicleService VehicleService, guard RoleGuard) *Maintenance {
	return &Maintenance{
		repository:     repository,
		vehicleService: vehicleService,
		guard:          guard,
	}
}

func (s *Maintenance) CreateRecord(ctx context.Context, caller entities.Caller, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceRecord, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpMaintenanceCreate); err != nil {
		return nil, err
	}

	if maintenanceModify.VehicleID == nil ||
		maintenanceModify.Type == nil ||
		maintenanceModify.Description == nil ||
		maintenanceModify.ServiceDate == nil ||
		maintenanceModify.ServicedBy == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidType(maintenanceModify.Type.String()) {
		return nil, ErrInvalidType
	}
	if maintenanceModify.Cost != nil && *maintenanceModify.Cost < 0 {
		return nil, ErrInvalidCost
	}
	if maintenanceModify.Mileage != nil && *maintenanceModify.Mileage < 0 {
		return nil, ErrInvalidMileage
	}

	if _, err := s.vehicleService.GetVehicle(ctx, *maintenanceModify.VehicleID); err != nil {
		if errors.Is(err, vehicleservice.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	record, err := s.repository.Create(ctx, maintenanceModify)
	if err != nil {
		return nil, fmt.Errorf("create maintenance record: %w", err)
	}

	return record, nil
}

// UpdateRecord применяет частичный патч к записи обслуживания.
// Машина у записи не меняется, поэтому VehicleID в патче игнорируется.
func (s *Maintenance) UpdateRecord(ctx context.Context, caller entities.Caller, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceRecord, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpMaintenanceUpdate); err != nil {
		return nil, err
	}

	if maintenanceModify.ID == nil {
		return nil, ErrInvalidRecordID
	}

	if maintenanceModify.Type == nil &&
		maintenanceModify.Description == nil &&
		maintenanceModify.Cost == nil &&
		maintenanceModify.Mileage == nil &&
		maintenanceModify.ServiceDate == nil &&
		maintenanceModify.ServicedBy == nil &&
		maintenanceModify.Notes == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if maintenanceModify.Type != nil && !isValidType(maintenanceModify.Type.String()) {
		return nil, ErrInvalidType
	}
	if maintenanceModify.Cost != nil && *maintenanceModify.Cost < 0 {
		return nil, ErrInvalidCost
	}
	if maintenanceModify.Mileage != nil && *maintenanceModify.Mileage < 0 {
		return nil, ErrInvalidMileage
	}

	record, err := s.repository.Update(ctx, maintenanceModify)
	if err != nil {
		return nil, fmt.Errorf("update maintenance record: %w", err)
	}

	return record, nil
}

func (s *Maintenance) DeleteRecord(ctx context.Context, caller entities.Caller, id int64) (int64, error) {
	if err := s.guard.Authorize(caller.Role, authz.OpMaintenanceDelete); err != nil {
		return 0, err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete maintenance record: %w", err)
	}
	return id, nil
}

func (s *Maintenance) GetRecords(ctx context.Context, vehicleID *int64) ([]entities.MaintenanceRecord, error) {
	records, err := s.repository.GetAll(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance records: %w", err)
	}

	return records, nil
}

func isValidType(maintenanceType string) bool {
	switch maintenanceType {
	case "routine", "repair", "inspection":
		return true
	default:
		return false
	}
}
