package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"fleet/internal/entities"
)

// окно "скоро на обслуживание" для карточки дашборда
const upcomingMaintenanceWindow = 30 * 24 * time.Hour

type Dashboard struct {
	repository Repository
	clock      clockwork.Clock
}

func New(repository Repository, clock clockwork.Clock) *Dashboard {
	return &Dashboard{
		repository: repository,
		clock:      clock,
	}
}

func (s *Dashboard) GetStats(ctx context.Context) (*entities.DashboardStats, error) {
	now := s.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats, err := s.repository.GetStats(ctx, now.Add(upcomingMaintenanceWindow), monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}
