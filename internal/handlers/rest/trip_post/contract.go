//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_post_test
package trip_post

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
	CreateTrip(ctx context.Context, caller entities.Caller, tripModifyEntity entities.TripModify) (*entities.Trip, error)
}
