//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_delete_test
package assignment_delete

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
	DeleteAssignment(ctx context.Context, caller entities.Caller, id int64) (int64, error)
}
