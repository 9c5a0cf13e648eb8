//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_post_test
package maintenance_post

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
	CreateRecord(ctx context.Context, caller entities.Caller, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceRecord, error)
}
