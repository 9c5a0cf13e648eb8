//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_put_test
package assignment_put

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
	UpdateAssignment(ctx context.Context, caller entities.Caller, assignmentModifyEntity entities.AssignmentModify) (*entities.AssignmentDetails, error)
}
