package service_due

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	FlagOverdueVehicles(ctx context.Context) (int64, error)
}

type ServiceDue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewServiceDue(log logger.Logger, service Service, interval time.Duration) *ServiceDue {
	return &ServiceDue{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ServiceDue) TTL() time.Duration {
	return s.interval
}

func (s *ServiceDue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.FlagOverdueVehicles(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("overdue_vehicles", rowsAffected),
		).Info("service due sweep")
	}

	return err
}

func (s *ServiceDue) Info() string {
	return "service due sweep"
}
