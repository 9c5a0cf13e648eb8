//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_put_test
package maintenance_put

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
	UpdateRecord(ctx context.Context, caller entities.Caller, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceRecord, error)
}
