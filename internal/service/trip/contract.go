//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Repository interface {
	Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	GetAll(ctx context.Context, filter entities.TripFilter) ([]entities.Trip, error)
	Update(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error)
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type RoleGuard interface {
	Authorize(role entities.RoleType, op authz.Operation) error
}
