//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_post_test
package assignment_post

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
	CreateAssignment(ctx context.Context, caller entities.Caller, assignmentModifyEntity entities.AssignmentModify) (*entities.AssignmentDetails, error)
}
