//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_test
package maintenance

import (
	"context"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Repository interface {
	Create(ctx context.Context, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceRecord, error)
	Update(ctx context.Context, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceRecord, error)
	GetAll(ctx context.Context, vehicleID *int64) ([]entities.MaintenanceRecord, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
}

type RoleGuard interface {
	Authorize(role entities.RoleType, op authz.Operation) error
}
