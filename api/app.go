package api

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/storefront/auth/password"
	"github.com/kbukum/storefront/auth/token"
	"github.com/kbukum/storefront/catalog"
	"github.com/kbukum/storefront/database"
	"github.com/kbukum/storefront/identity"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/observability"
	"github.com/kbukum/storefront/orders"
	"github.com/kbukum/storefront/pricing"
	"github.com/kbukum/storefront/seed"
	"github.com/kbukum/storefront/server"
	"github.com/kbukum/storefront/server/middleware"
)

// Models lists every table of the API.
func Models() []interface{} {
	return []interface{}{
		&catalog.Product{},
		&identity.User{},
		&orders.Order{},
		&orders.OrderItem{},
	}
}

// App is a wired storefront API.
type App struct {
	Server  *server.Server
	DB      *database.DB
	Seeder  *seed.Seeder
	Tokens  *token.Service
	limiter *middleware.RateLimiter
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	log     *logger.Logger
}

// New builds the API from cfg. Nothing listens until Start.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{log: log}
	if cfg.Observability.Enabled {
		if err := app.initTelemetry(ctx, cfg); err != nil {
			return nil, err
		}
	}

	if err := app.build(ctx, cfg); err != nil {
		app.Close(ctx)
		return nil, err
	}
	return app, nil
}

func (a *App) build(ctx context.Context, cfg Config) error {
	log := a.log
	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	a.DB = db
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return err
		}
	}

	tokens, err := token.NewService(cfg.Auth.JWT)
	if err != nil {
		return err
	}
	calc, err := pricing.NewCalculator(cfg.Orders.Pricing)
	if err != nil {
		return err
	}
	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		log.Warn("metrics disabled", logger.Fields(logger.FieldError, err.Error()))
	}
	prom := observability.NewPrometheus(cfg.Observability.Namespace)

	products := catalog.NewRepository(db)
	users := identity.NewService(db, password.NewHasher(cfg.Auth.Password), tokens, metrics, log)
	a.Tokens = tokens
	a.Seeder = seed.NewSeeder(db, users, cfg.Seed, log)
	a.limiter = middleware.NewRateLimiter(cfg.Server.AuthLimit)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(cfg.Name)
	srv.RegisterDefaultEndpoints(cfg.Name, prom, db)

	engine := srv.GinEngine()
	requireAuth := middleware.Auth(tokens)
	apiGroup := engine.Group("/api", middleware.Metrics(prom, metrics))

	catalog.NewHandler(products, log).Register(apiGroup.Group("/products"))
	identity.NewHandler(users).Register(apiGroup.Group("/users"), requireAuth, a.limiter.Handler())
	orderHandler := orders.NewHandler(orders.NewService(db, products, calc, metrics, log), cfg.Orders)
	orderHandler.Register(apiGroup.Group("/orders"), requireAuth)
	orderHandler.RegisterKeys(apiGroup.Group("/keys"))
	if cfg.Seed.Enabled {
		seed.NewHandler(a.Seeder).Register(apiGroup.Group("/seed"))
	}

	a.Server = srv
	return nil
}

// Start begins serving.
func (a *App) Start(ctx context.Context) error {
	return a.Server.Start(ctx)
}

// Stop shuts the server down and releases every resource.
func (a *App) Stop(ctx context.Context) error {
	var errs []error
	if a.Server != nil {
		if err := a.Server.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.Close(ctx)
	return errors.Join(errs...)
}

// Close releases the database, the rate limiter and telemetry without
// touching the server. Use it when the app was never started.
func (a *App) Close(ctx context.Context) {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.log.Warn("database close failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}
	a.shutdownTelemetry(ctx)
}

func (a *App) initTelemetry(ctx context.Context, cfg Config) error {
	tp, err := observability.InitTracer(ctx, cfg.Observability.TracerConfig(cfg.Name, cfg.Version, cfg.Environment), a.log)
	if err != nil {
		return err
	}
	a.tracer = tp
	mp, err := observability.InitMeter(ctx, cfg.Observability.MeterConfig(cfg.Name, cfg.Version, cfg.Environment), a.log)
	if err != nil {
		a.shutdownTelemetry(ctx)
		return err
	}
	a.meter = mp
	return nil
}

func (a *App) shutdownTelemetry(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.log.Warn("tracer shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
		a.tracer = nil
	}
	if a.meter != nil {
		if err := a.meter.Shutdown(ctx); err != nil {
			a.log.Warn("meter shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
		a.meter = nil
	}
}
