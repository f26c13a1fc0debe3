package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/hrms/internal/hrms/http"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/internal/hrms/store/drivers/sqlite"
	"github.com/aussiebroadwan/hrms/pkg/cryptox"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...BuildVersion=".
var BuildVersion = "v0.1.0"

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "hrms"

// Application encapsulates the HRMS service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	hasher   *cryptox.Hasher
	signer   jwtx.Signer
	verifier jwtx.Verifier
	metrics  *httpx.Metrics

	// Services
	authService       *service.AuthService
	employeeService   *service.EmployeeService
	attendanceService *service.AttendanceService
	eventService      *service.EventService
	payrollService    *service.PayrollService
	appraisalService  *service.AppraisalService
	dashboardService  *service.DashboardService
	bootstrapService  *service.BootstrapService
	sweeper           *service.Sweeper

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hrms",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initAuth(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if err := app.bootstrap(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler exposes the fully wired router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.sweeper.Start()

	app.logger.Info("hrms starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.sweeper.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hrms...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.sweeper.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hrms stopped")
	return nil
}

// DSN returns the sqlite connection string for path. WAL lets readers run
// alongside the single writer.
func DSN(path string) string {
	if path == ":memory:" {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// OpenStore opens the database in cfg and applies pending migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(DSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db
	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initAuth() error {
	secret := []byte(app.cfg.JWTSecret)

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: app.cfg.Issuer})
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	app.hasher = cryptox.NewHasher(app.cfg.Pepper)
	app.metrics = httpx.NewMetrics(MetricsNamespace)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.employeeService = &service.EmployeeService{Store: app.db, Hasher: app.hasher}
	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}
	app.attendanceService = &service.AttendanceService{Store: app.db, Location: app.cfg.Location}
	app.eventService = &service.EventService{Store: app.db}
	app.payrollService = &service.PayrollService{Store: app.db}
	app.appraisalService = &service.AppraisalService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db, Attendance: app.attendanceService}
	app.bootstrapService = &service.BootstrapService{Store: app.db, Employees: app.employeeService}

	app.sweeper = service.NewSweeper(app.attendanceService, app.logger, app.cfg.SweepInterval)
}

// bootstrap creates the configured admin on an empty database.
func (app *Application) bootstrap(ctx context.Context) error {
	if app.cfg.AdminEmail == "" {
		return nil
	}
	ctx = slogx.WithContext(ctx, app.logger)

	_, err := app.bootstrapService.EnsureAdmin(ctx, service.AdminAccount{
		Name:     app.cfg.AdminName,
		Email:    app.cfg.AdminEmail,
		Password: app.cfg.AdminPassword,
	})
	switch {
	case errors.Is(err, service.ErrBootstrapAlready):
		app.logger.Debug("employees exist, skipping admin bootstrap")
		return nil
	case err != nil:
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.Access,
		app.metrics,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.EmployeeService = app.employeeService
	router.AttendanceService = app.attendanceService
	router.EventService = app.eventService
	router.PayrollService = app.payrollService
	router.AppraisalService = app.appraisalService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
