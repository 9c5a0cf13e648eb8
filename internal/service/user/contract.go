//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"fleet/internal/entities"
	"fleet/internal/pkg/authz"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	Delete(ctx context.Context, id int64) error

	// CountBlockingRelations возвращает число активных назначений и
	// незавершенных поездок пользователя одним запросом.
	CountBlockingRelations(ctx context.Context, id int64) (activeAssignments, inProgressTrips int64, err error)
}

type RoleGuard interface {
	Authorize(role entities.RoleType, op authz.Operation) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
