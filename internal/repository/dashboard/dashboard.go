package dashboard

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetStats собирает агрегаты одним запросом, чтобы снимок был консистентным.
func (r *Repository) GetStats(ctx context.Context, upcomingBefore, monthStart time.Time) (*entities.DashboardStats, error) {
	query := `
	SELECT
		(SELECT COUNT(*) FROM vehicles),
		(SELECT COUNT(*) FROM vehicles WHERE status = 'active'),
		(SELECT COUNT(*) FROM vehicles WHERE status = 'maintenance'),
		(SELECT COUNT(*) FROM users WHERE role IN ('user', 'manager')),
		(SELECT COUNT(*) FROM trips WHERE status = 'in_progress'),
		(SELECT COUNT(*) FROM vehicles WHERE next_service_date IS NOT NULL AND next_service_date <= $1),
		(SELECT COALESCE(SUM(mileage), 0) FROM vehicles),
		(SELECT COALESCE(SUM(cost), 0) FROM maintenance_records WHERE service_date >= $2)`

	var stats entities.DashboardStats
	err := r.querier.QueryRow(ctx, query, upcomingBefore, monthStart).
		Scan(
			&stats.TotalVehicles,
			&stats.ActiveVehicles,
			&stats.VehiclesInMaintenance,
			&stats.TotalDrivers,
			&stats.ActiveTrips,
			&stats.UpcomingMaintenance,
			&stats.TotalMileage,
			&stats.MonthlyMaintenanceCost,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected dashboard repository getstats error: %w", err)
	}

	return &stats, nil
}
