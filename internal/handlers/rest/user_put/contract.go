//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_put_test
package user_put

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateUser(ctx context.Context, caller entities.Caller, userModifyEntity entities.UserModify) (*entities.User, error)
}
