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

	httpapi "github.com/aussiebroadwan/bookshelf/internal/bookshelf/http"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store/drivers/mongo"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store/drivers/sqlite"
	"github.com/aussiebroadwan/bookshelf/pkg/cryptox"
	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v1.0.0"

	storeConnectTimeout = 10 * time.Second
)

// Application wires the bookshelf API together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *service.TokenService

	server *http.Server
	router *httpapi.Router
}

type Option func(*Application)

// WithLogger replaces the logger built from the config.
func WithLogger(l *slog.Logger) Option {
	return func(app *Application) { app.logger = l }
}

// New opens the store, applies migrations and builds the HTTP server. A
// missing JWT secret fails here with service.ErrMissingSecret.
func New(cfg Config, opts ...Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = slogx.New(slogx.Config{
			Service: "bookshelf",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		})
	}

	if err := cryptox.SetCost(cfg.BcryptCost); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrConfiguration, err)
	}

	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		return nil, err
	}
	app.tokens = tokens

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the full middleware-wrapped router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("bookshelf starting",
		"addr", app.server.Addr,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig.String())
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests for up to the grace period and closes
// the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bookshelf...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "err", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "err", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "err", err)
		return err
	}

	app.logger.Info("bookshelf stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := openStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("store ready", "driver", app.cfg.StoreDriver)
	return nil
}

// openStore connects to the configured driver and applies migrations.
func openStore(cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.StoreDriver {
	case DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
		defer cancel()
		db, err = mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		db, err = sqlite.NewStore(sqliteDSN(cfg.DatabaseFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply %s migrations: %w", cfg.StoreDriver, err)
	}
	return db, nil
}

func sqliteDSN(file string) string {
	if file == ":memory:" {
		return file
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", file)
}

func (app *Application) initHTTP() {
	if app.cfg.APIKey == "" {
		app.logger.Warn("API_KEY is not set, the x-api-key gate is disabled")
	}

	router := httpapi.NewRouter(app.db, app.tokens, app.logger, httpapi.Options{
		BuildVersion: BuildVersion,
		APIKey:       app.cfg.APIKey,
		StaticDir:    app.cfg.StaticDir,
		SecureCookie: app.cfg.IsProduction(),
		CORS:         httpx.CORSConfig{AllowedOrigins: app.cfg.CORSAllowedOrigins, MaxAge: 600},
		AuthLimit:    httpx.AuthLimit,
		APILimit:     httpx.APILimit,
	})
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
