// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"fleet/internal/handlers/rest/assignment_delete"
	"fleet/internal/handlers/rest/assignment_get"
	"fleet/internal/handlers/rest/assignment_post"
	"fleet/internal/handlers/rest/assignment_put"
	"fleet/internal/handlers/rest/assignments_get"
	"fleet/internal/handlers/rest/dashboard_get"
	"fleet/internal/handlers/rest/maintenance_delete"
	"fleet/internal/handlers/rest/maintenance_get"
	"fleet/internal/handlers/rest/maintenance_post"
	"fleet/internal/handlers/rest/maintenance_put"
	"fleet/internal/handlers/rest/trip_post"
	"fleet/internal/handlers/rest/trip_put"
	"fleet/internal/handlers/rest/trips_get"
	"fleet/internal/handlers/rest/user_delete"
	"fleet/internal/handlers/rest/user_get"
	"fleet/internal/handlers/rest/user_post"
	"fleet/internal/handlers/rest/user_put"
	"fleet/internal/handlers/rest/users_get"
	"fleet/internal/handlers/rest/vehicle_delete"
	"fleet/internal/handlers/rest/vehicle_get"
	"fleet/internal/handlers/rest/vehicle_post"
	"fleet/internal/handlers/rest/vehicle_put"
	"fleet/internal/handlers/rest/vehicles_get"
	"fleet/internal/handlers/tasks/service_due"
	"fleet/internal/pkg/authz"
	"fleet/internal/pkg/config"
	"fleet/internal/repository/assignment"
	"fleet/internal/repository/dashboard"
	"fleet/internal/repository/maintenance"
	"fleet/internal/repository/trip"
	"fleet/internal/repository/user"
	vehicle2 "fleet/internal/repository/vehicle"
	assignment2 "fleet/internal/service/assignment"
	dashboard2 "fleet/internal/service/dashboard"
	maintenance2 "fleet/internal/service/maintenance"
	trip2 "fleet/internal/service/trip"
	user2 "fleet/internal/service/user"
	"fleet/internal/service/vehicle"
	"fleet/pkg/background"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideAssignmentRepository(querier)
	guard := provideRoleGuard()
	clock := provideClock()
	manager := provideTxManager(pool)
	assignment := provideServiceAssignment(repository, guard, clock, manager)
	vehicleRepository := provideVehicleRepository(querier)
	vehicle := provideServiceVehicle(vehicleRepository, guard, manager)
	userRepository := provideUserRepository(querier)
	user := provideServiceUser(userRepository, guard, manager)
	maintenanceRepository := provideMaintenanceRepository(querier)
	maintenance := provideServiceMaintenance(maintenanceRepository, vehicle, guard)
	tripRepository := provideTripRepository(querier)
	trip := provideServiceTrip(tripRepository, vehicle, user, guard)
	dashboardRepository := provideDashboardRepository(querier)
	dashboard := provideServiceDashboard(dashboardRepository, clock)
	serviceDueInterval := provideServiceDueInterval(cfg)
	serviceDue := provideServiceDueTask(log, vehicle, serviceDueInterval)
	v := provideTaskList(serviceDue)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceAssignment:  assignment,
		ServiceVehicle:     vehicle,
		ServiceUser:        user,
		ServiceMaintenance: maintenance,
		ServiceTrip:        trip,
		ServiceDashboard:   dashboard,
		BackgroundWorkers:  worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-telemetry)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideVehicleRepository(querier)
	guard := provideRoleGuard()
	manager := provideTxManager(pool)
	vehicle := provideServiceVehicle(repository, guard, manager)
	kafkaWorkerApp := &KafkaWorkerApp{
		VehicleService: vehicle,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	ServiceDueInterval time.Duration
)

type Application struct {
	ServiceAssignment  ServiceAssignment
	ServiceVehicle     ServiceVehicle
	ServiceUser        ServiceUser
	ServiceMaintenance ServiceMaintenance
	ServiceTrip        ServiceTrip
	ServiceDashboard   ServiceDashboard
	BackgroundWorkers  *background.Worker
}

type ServiceAssignment interface {
	assignments_get.Service
	assignment_get.Service
	assignment_post.Service
	assignment_put.Service
	assignment_delete.Service
}

type ServiceVehicle interface {
	vehicles_get.Service
	vehicle_get.Service
	vehicle_post.Service
	vehicle_put.Service
	vehicle_delete.Service
}

type ServiceUser interface {
	users_get.Service
	user_get.Service
	user_post.Service
	user_put.Service
	user_delete.Service
}

type ServiceMaintenance interface {
	maintenance_get.Service
	maintenance_post.Service
	maintenance_put.Service
	maintenance_delete.Service
}

type ServiceTrip interface {
	trips_get.Service
	trip_post.Service
	trip_put.Service
}

type ServiceDashboard interface {
	dashboard_get.Service
}

type KafkaWorkerApp struct {
	VehicleService *vehicle.Vehicle
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRoleGuard() *authz.Guard {
	return authz.New()
}

func provideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func provideAssignmentRepository(querier2 *querier.Querier) *assignment.Repository {
	return assignment.New(querier2)
}

func provideVehicleRepository(querier2 *querier.Querier) *vehicle2.Repository {
	return vehicle2.New(querier2)
}

func provideUserRepository(querier2 *querier.Querier) *user.Repository {
	return user.New(querier2)
}

func provideMaintenanceRepository(querier2 *querier.Querier) *maintenance.Repository {
	return maintenance.New(querier2)
}

func provideTripRepository(querier2 *querier.Querier) *trip.Repository {
	return trip.New(querier2)
}

func provideDashboardRepository(querier2 *querier.Querier) *dashboard.Repository {
	return dashboard.New(querier2)
}

func provideServiceAssignment(
	repository assignment2.Repository,
	guard assignment2.RoleGuard,
	clock clockwork.Clock,
	txManager assignment2.TxManager,
) *assignment2.Assignment {
	return assignment2.New(repository, guard, clock, txManager)
}

func provideServiceVehicle(
	repository vehicle.Repository,
	guard vehicle.RoleGuard,
	txManager vehicle.TxManager,
) *vehicle.Vehicle {
	return vehicle.New(repository, guard, txManager)
}

func provideServiceUser(
	repository user2.Repository,
	guard user2.RoleGuard,
	txManager user2.TxManager,
) *user2.User {
	return user2.New(repository, guard, txManager)
}

func provideServiceMaintenance(
	repository maintenance2.Repository,
	vehicles maintenance2.VehicleService,
	guard maintenance2.RoleGuard,
) *maintenance2.Maintenance {
	return maintenance2.New(repository, vehicles, guard)
}

func provideServiceTrip(
	repository trip2.Repository,
	vehicles trip2.VehicleService,
	users trip2.UserService,
	guard trip2.RoleGuard,
) *trip2.Trip {
	return trip2.New(repository, vehicles, users, guard)
}

func provideServiceDashboard(
	repository dashboard2.Repository,
	clock clockwork.Clock,
) *dashboard2.Dashboard {
	return dashboard2.New(repository, clock)
}

func provideServiceDueInterval(cfg *config.Config) ServiceDueInterval {
	return ServiceDueInterval(cfg.Tasks.ServiceDueInterval)
}

func provideServiceDueTask(
	log logger.Logger,
	vehicles service_due.Service,
	interval ServiceDueInterval,
) *service_due.ServiceDue {
	return service_due.NewServiceDue(log, vehicles, time.Duration(interval))
}

func provideTaskList(
	serviceDueTask *service_due.ServiceDue,
) []background.Task {
	return []background.Task{
		serviceDueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
