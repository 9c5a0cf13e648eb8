//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"
	"time"

	"fleet/internal/entities"
)

type Repository interface {
	GetStats(ctx context.Context, upcomingBefore, monthStart time.Time) (*entities.DashboardStats, error)
}
