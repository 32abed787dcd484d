package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nevilinq/nevilinq-api/internal/account"
	"github.com/nevilinq/nevilinq-api/internal/auth"
	"github.com/nevilinq/nevilinq-api/internal/config"
	"github.com/nevilinq/nevilinq-api/internal/middleware"
	"github.com/nevilinq/nevilinq-api/internal/notification"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(d.Cfg.CORSOrigins, ","),
		AllowCredentials: true,
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	var accountRepo account.Repository
	if d.DB != nil {
		accountRepo = account.NewPostgresRepository(d.DB)
	} else {
		accountRepo = account.NewMemoryRepository()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	accountSvc := account.NewService(accountRepo, notifier)

	issuer := auth.NewTokenIssuer(d.Cfg.SecretKey, d.Cfg.AccessTokenTTL())
	authSvc := auth.NewService(accountRepo, issuer)
	authHandler := auth.NewHandler(accountSvc, authSvc)

	RegisterAuthRoutes(app, authHandler)

	return nil
}
