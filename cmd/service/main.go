package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "fleet/internal/app"
	"fleet/internal/handlers/rest/assignment_delete"
	"fleet/internal/handlers/rest/assignment_get"
	"fleet/internal/handlers/rest/assignment_post"
	"fleet/internal/handlers/rest/assignment_put"
	"fleet/internal/handlers/rest/assignments_get"
	"fleet/internal/handlers/rest/dashboard_get"
	"fleet/internal/handlers/rest/healthcheck_head"
	"fleet/internal/handlers/rest/maintenance_delete"
	"fleet/internal/handlers/rest/maintenance_get"
	"fleet/internal/handlers/rest/maintenance_post"
	"fleet/internal/handlers/rest/maintenance_put"
	"fleet/internal/handlers/rest/ping_get"
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
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/dotenv"
	metrics_system "fleet/internal/pkg/metrics"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/pkg/middlewares/graceful_shutdown"
	"fleet/internal/pkg/middlewares/metrics"
	"fleet/internal/pkg/middlewares/rate_limiter"
	"fleet/internal/pkg/middlewares/timeout"
	"fleet/internal/pkg/postgres"
	"fleet/pkg/logger"
	"fleet/pkg/logger/zap_adapter"
	"fleet/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fleet-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// все API маршруты за JWT auth
	api := router.PathPrefix("/").Subrouter()
	api.Use(auth.Middleware(cfg.Auth.JWTSecret))

	api.Handle("/assignments", assignments_get.New(log, app.ServiceAssignment)).Methods("GET")
	api.Handle("/assignment/{id}", assignment_get.New(log, app.ServiceAssignment)).Methods("GET")
	api.Handle("/assignment", assignment_post.New(log, app.ServiceAssignment)).Methods("POST")
	api.Handle("/assignment/{id}", assignment_put.New(log, app.ServiceAssignment)).Methods("PUT")
	api.Handle("/assignment/{id}", assignment_delete.New(log, app.ServiceAssignment)).Methods("DELETE")

	api.Handle("/vehicles", vehicles_get.New(log, app.ServiceVehicle)).Methods("GET")
	api.Handle("/vehicle/{id}", vehicle_get.New(log, app.ServiceVehicle)).Methods("GET")
	api.Handle("/vehicle", vehicle_post.New(log, app.ServiceVehicle)).Methods("POST")
	api.Handle("/vehicle", vehicle_put.New(log, app.ServiceVehicle)).Methods("PUT")
	api.Handle("/vehicle/{id}", vehicle_delete.New(log, app.ServiceVehicle)).Methods("DELETE")

	api.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")
	api.Handle("/user/{id}", user_get.New(log, app.ServiceUser)).Methods("GET")
	api.Handle("/user", user_post.New(log, app.ServiceUser)).Methods("POST")
	api.Handle("/user", user_put.New(log, app.ServiceUser)).Methods("PUT")
	api.Handle("/user/{id}", user_delete.New(log, app.ServiceUser)).Methods("DELETE")

	api.Handle("/maintenance", maintenance_get.New(log, app.ServiceMaintenance)).Methods("GET")
	api.Handle("/maintenance", maintenance_post.New(log, app.ServiceMaintenance)).Methods("POST")
	api.Handle("/maintenance/{id}", maintenance_put.New(log, app.ServiceMaintenance)).Methods("PUT")
	api.Handle("/maintenance/{id}", maintenance_delete.New(log, app.ServiceMaintenance)).Methods("DELETE")

	api.Handle("/trips", trips_get.New(log, app.ServiceTrip)).Methods("GET")
	api.Handle("/trip", trip_post.New(log, app.ServiceTrip)).Methods("POST")
	api.Handle("/trip", trip_put.New(log, app.ServiceTrip)).Methods("PUT")

	api.Handle("/dashboard/stats", dashboard_get.New(log, app.ServiceDashboard)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
