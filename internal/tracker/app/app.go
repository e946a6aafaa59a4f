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

	"github.com/balco/tracker/internal/tracker/directory"
	httpapi "github.com/balco/tracker/internal/tracker/http"
	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/offline"
	"github.com/balco/tracker/internal/tracker/store/drivers/postgres"
	"github.com/balco/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/balco/tracker/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tracker service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager

	// User directory, in lookup order
	memory     *directory.MemoryTier
	persistent *directory.PersistentTier
	fallback   *directory.FallbackTier

	// Services
	authenticator *service.Authenticator
	sessions      *service.SessionService
	registration  *service.RegistrationService
	catalog       *service.CatalogService
	production    *service.ProductionService

	// HTTP server
	limits httpapi.Limits
	server *http.Server
	router *httpapi.Router
}

// Option customises an Application before its routes are applied.
type Option func(*Application)

// WithLimits replaces the rate limit profiles read from RATELIMIT_*.
func WithLimits(l httpapi.Limits) Option {
	return func(app *Application) { app.limits = l }
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	return NewWithLogger(cfg, slogx.New(slogx.Config{
		Service: "tracker",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}))
}

// NewWithLogger is New with a caller supplied logger.
func NewWithLogger(cfg Config, logger *slog.Logger, opts ...Option) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger, limits: httpapi.DefaultLimits()}
	for _, opt := range opts {
		opt(app)
	}

	ctx := slogx.WithContext(context.Background(), logger)
	db, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.db = db

	keyManager, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	if err := app.initDirectory(); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler with every route applied.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("tracker service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.Database.Driver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tracker service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Accounts registered during an outage only live in memory.
	if n := app.memory.Len(); n > 0 {
		app.logger.Warn("discarding accounts registered during a database outage", "count", n)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("tracker service stopped")
	return nil
}

// Close releases the database without touching the HTTP server, for
// callers that only use Handler.
func (app *Application) Close() error { return app.db.Close() }

// OpenStore opens the configured database and applies migrations.
//
// A postgres server that cannot be reached at startup does not stop the
// service: it starts on the offline store, sign-in keeps working from the
// memory and fallback tiers and /readyz reports degraded.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	logger := slogx.FromContext(ctx)

	var db store.Store
	switch cfg.Database.Driver {
	case DriverSQLite:
		s, err := sqlite.NewStore(cfg.SQLiteDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		db = s

	case DriverPostgres:
		pingCtx := ctx
		if cfg.Database.QueryTimeout > 0 {
			var cancel context.CancelFunc
			pingCtx, cancel = context.WithTimeout(ctx, cfg.Database.QueryTimeout)
			defer cancel()
		}

		s, err := postgres.NewStore(pingCtx, cfg.Database.DSN, postgres.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: 30 * time.Minute,
		})
		if err != nil {
			logger.Error("database unreachable, starting in outage mode", "driver", cfg.Database.Driver, "error", err)
			return offline.NewStore(), nil
		}
		db = s

	case DriverNone:
		logger.Warn("no database configured, starting in outage mode")
		return offline.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", "driver", cfg.Database.Driver)
	return db, nil
}

func (app *Application) initDirectory() error {
	accounts, err := directory.LoadFallbackAccounts(app.cfg.FallbackAccountsFile)
	if err != nil {
		return fmt.Errorf("failed to load fallback accounts: %w", err)
	}
	fallback, err := directory.NewFallbackTier(accounts)
	if err != nil {
		return fmt.Errorf("failed to load fallback accounts: %w", err)
	}

	app.memory = directory.NewMemoryTier()
	app.persistent = directory.NewPersistentTier(app.db.Users(), app.cfg.Database.QueryTimeout)
	app.fallback = fallback

	app.logger.Info("user directory ready", "fallback_accounts", fallback.Len())
	return nil
}

func (app *Application) initServices() {
	app.authenticator = service.NewAuthenticator(app.memory, app.persistent, app.fallback)
	app.sessions = service.NewSessionService(app.keyManager, app.cfg.Session.Issuer, app.cfg.Session.TTL)
	app.registration = service.NewRegistrationService(app.persistent, app.memory, app.cfg.PasswordCost)
	app.catalog = &service.CatalogService{Store: app.db}
	app.production = &service.ProductionService{Store: app.db, Now: time.Now}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Limits = app.limits
	router.CookieSecure = app.cfg.Session.CookieSecure
	router.FallbackAccounts = app.fallback.Len()

	router.Authenticator = app.authenticator
	router.Sessions = app.sessions
	router.Registration = app.registration
	router.Catalog = app.catalog
	router.Production = app.production
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
