//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Repository interface {
	Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
	Delete(ctx context.Context, id int64) error

	UpdateMileageIfGreater(ctx context.Context, id int64, mileage int64) (*entities.Vehicle, error)
	UpdateMaintenanceWhereServiceOverdue(ctx context.Context) (int64, error)
}

type RoleGuard interface {
	Authorize(role entities.RoleType, op authz.Operation) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
