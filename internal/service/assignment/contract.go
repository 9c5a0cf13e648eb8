//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Repository interface {
	Create(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.DriverAssignment, error)
	GetByID(ctx context.Context, id int64) (*entities.DriverAssignment, error)
	GetDetails(ctx context.Context, id int64) (*entities.AssignmentDetails, error)
	GetAll(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error)
	Update(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.DriverAssignment, error)
	Delete(ctx context.Context, id int64) error

	GetVehicleForAssignment(ctx context.Context, vehicleID int64) (*entities.Vehicle, error)
	GetUserForAssignment(ctx context.Context, userID int64) (*entities.UserRef, error)
	CountActiveByVehicle(ctx context.Context, vehicleID int64) (int64, error)
}

type RoleGuard interface {
	Authorize(role entities.RoleType, op authz.Operation) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
