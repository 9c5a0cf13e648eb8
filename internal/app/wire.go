//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

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

	assignmentRepo "fleet/internal/repository/assignment"
	dashboardRepo "fleet/internal/repository/dashboard"
	maintenanceRepo "fleet/internal/repository/maintenance"
	tripRepo "fleet/internal/repository/trip"
	userRepo "fleet/internal/repository/user"
	vehicleRepo "fleet/internal/repository/vehicle"
	assignmentService "fleet/internal/service/assignment"
	dashboardService "fleet/internal/service/dashboard"
	maintenanceService "fleet/internal/service/maintenance"
	tripService "fleet/internal/service/trip"
	userService "fleet/internal/service/user"
	vehicleService "fleet/internal/service/vehicle"

	"fleet/pkg/background"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRoleGuard,
		provideClock,
		provideServiceDueInterval,

		provideAssignmentRepository,
		provideVehicleRepository,
		provideUserRepository,
		provideMaintenanceRepository,
		provideTripRepository,
		provideDashboardRepository,

		provideServiceAssignment,
		provideServiceVehicle,
		provideServiceUser,
		provideServiceMaintenance,
		provideServiceTrip,
		provideServiceDashboard,

		provideServiceDueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceVehicle), new(*vehicleService.Vehicle)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceMaintenance), new(*maintenanceService.Maintenance)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Dashboard)),

		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(maintenanceService.Repository), new(*maintenanceRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(dashboardService.Repository), new(*dashboardRepo.Repository)),

		wire.Bind(new(maintenanceService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(tripService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(tripService.UserService), new(*userService.User)),

		wire.Bind(new(assignmentService.RoleGuard), new(*authz.Guard)),
		wire.Bind(new(vehicleService.RoleGuard), new(*authz.Guard)),
		wire.Bind(new(userService.RoleGuard), new(*authz.Guard)),
		wire.Bind(new(maintenanceService.RoleGuard), new(*authz.Guard)),
		wire.Bind(new(tripService.RoleGuard), new(*authz.Guard)),

		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),

		wire.Bind(new(service_due.Service), new(*vehicleService.Vehicle)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	VehicleService *vehicleService.Vehicle
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-telemetry)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRoleGuard,

		provideVehicleRepository,
		provideServiceVehicle,

		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(vehicleService.RoleGuard), new(*authz.Guard)),
		wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
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

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideMaintenanceRepository(querier *querier.Querier) *maintenanceRepo.Repository {
	return maintenanceRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideDashboardRepository(querier *querier.Querier) *dashboardRepo.Repository {
	return dashboardRepo.New(querier)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	guard assignmentService.RoleGuard,
	clock clockwork.Clock,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, guard, clock, txManager)
}

func provideServiceVehicle(
	repository vehicleService.Repository,
	guard vehicleService.RoleGuard,
	txManager vehicleService.TxManager,
) *vehicleService.Vehicle {
	return vehicleService.New(repository, guard, txManager)
}

func provideServiceUser(
	repository userService.Repository,
	guard userService.RoleGuard,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, guard, txManager)
}

func provideServiceMaintenance(
	repository maintenanceService.Repository,
	vehicles maintenanceService.VehicleService,
	guard maintenanceService.RoleGuard,
) *maintenanceService.Maintenance {
	return maintenanceService.New(repository, vehicles, guard)
}

func provideServiceTrip(
	repository tripService.Repository,
	vehicles tripService.VehicleService,
	users tripService.UserService,
	guard tripService.RoleGuard,
) *tripService.Trip {
	return tripService.New(repository, vehicles, users, guard)
}

func provideServiceDashboard(
	repository dashboardService.Repository,
	clock clockwork.Clock,
) *dashboardService.Dashboard {
	return dashboardService.New(repository, clock)
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
