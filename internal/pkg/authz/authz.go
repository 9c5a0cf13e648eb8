package authz

import (
	"errors"

	"fleet/internal/entities"
)

var ErrForbidden = errors.New("operation forbidden for role")

type Operation string

const (
	OpVehicleCreate Operation = "vehicle.create"
	OpVehicleUpdate Operation = "vehicle.update"
	OpVehicleDelete Operation = "vehicle.delete"

	OpUserCreate Operation = "user.create"
	OpUserUpdate Operation = "user.update"
	OpUserDelete Operation = "user.delete"

	OpAssignmentCreate Operation = "assignment.create"
	OpAssignmentUpdate Operation = "assignment.update"
	OpAssignmentDelete Operation = "assignment.delete"

	OpMaintenanceCreate Operation = "maintenance.create"
	OpMaintenanceUpdate Operation = "maintenance.update"
	OpMaintenanceDelete Operation = "maintenance.delete"

	OpTripCreate Operation = "trip.create"
	OpTripUpdate Operation = "trip.update"
)

func (o Operation) String() string {
	return string(o)
}

// Guard решает, разрешена ли мутация для роли. Read-операции ролями
// не ограничиваются, аутентификацию обеспечивает middleware.
type Guard struct {
	policy map[Operation][]entities.RoleType
}

func New() *Guard {
	managerOrAdmin := []entities.RoleType{entities.RoleAdmin, entities.RoleManager}
	adminOnly := []entities.RoleType{entities.RoleAdmin}
	anyRole := []entities.RoleType{entities.RoleAdmin, entities.RoleManager, entities.RoleUser}

	return &Guard{
		policy: map[Operation][]entities.RoleType{
			OpVehicleCreate: managerOrAdmin,
			OpVehicleUpdate: managerOrAdmin,
			OpVehicleDelete: adminOnly,

			OpUserCreate: adminOnly,
			OpUserUpdate: adminOnly,
			OpUserDelete: adminOnly,

			OpAssignmentCreate: managerOrAdmin,
			OpAssignmentUpdate: managerOrAdmin,
			OpAssignmentDelete: adminOnly,

			OpMaintenanceCreate: managerOrAdmin,
			OpMaintenanceUpdate: managerOrAdmin,
			OpMaintenanceDelete: adminOnly,

			OpTripCreate: anyRole,
			OpTripUpdate: anyRole,
		},
	}
}

func (g *Guard) Authorize(role entities.RoleType, op Operation) error {
	allowed, ok := g.policy[op]
	if !ok {
		return ErrForbidden
	}

	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return ErrForbidden
}
