package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"namesapi/docs"
	"namesapi/internal/config"
	"namesapi/internal/database"
	"namesapi/internal/database/migration"
	handlers "namesapi/internal/http/handler"
	"namesapi/internal/http/middleware"
	"namesapi/internal/logging"
	"namesapi/internal/metrics"
	"namesapi/internal/otel"
	"namesapi/internal/repository"
	mongorepo "namesapi/internal/repository/mongo"
	"namesapi/internal/repository/postgres"
	"namesapi/internal/service"
	"namesapi/internal/storage"
	"namesapi/internal/web"
)

// @title Names API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logging.NewStdout(cfg.Location, cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("tracing_init_failed", zap.Error(err))
	}

	repo, closeDB, err := openRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("db_init_failed", zap.String("driver", cfg.Driver), zap.Error(err))
	}

	assets := openAssets(ctx, cfg.MinIO, log)

	// Process-wide registry shared by /metrics and the request middleware
	reg := metrics.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("metrics_init_failed", zap.Error(err))
	}

	nameSvc := service.NewNameService(repo)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, repo, nameSvc, assets, reg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host", cfg.AppHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		log.Info("server_started", zap.String("addr", addr), zap.String("url", "http://localhost"+addr))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error("server_listen_failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
		cancel()
	}

	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := closeDB(releaseCtx); err != nil {
		log.Error("db_close_failed", zap.Error(err))
	}
	if err := shutdownTracing(releaseCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
	log.Info("server_stopped")
}

// openRepository connects the configured backend. An unreachable database is
// logged, not fatal: the driver keeps dialing and requests fail until it is back.
// Postgres defers its migration to the first request in that case.
func openRepository(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (repository.NameRepository, func(context.Context) error, error) {
	log = log.With(zap.String("component", "database"), zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverMongo:
		coll, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		repo := mongorepo.NewNameMongo(coll)
		if err := ping(ctx, repo); err != nil {
			log.Error("db_unavailable", zap.Error(err))
		} else {
			log.Info("db_connected", zap.String("database", coll.Database().Name()))
		}
		return repo, coll.Database().Client().Disconnect, nil

	case config.DriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewNamePostgres(db, func(ctx context.Context) error {
			return migration.EnsureMigrated(ctx, db, log, cfg.Database.Host)
		})
		if err := ping(ctx, repo); err != nil {
			log.Error("db_unavailable", zap.Error(err), zap.String("detail", "migration deferred to first request"))
		} else {
			log.Info("db_connected", zap.String("database", cfg.Database.Name))
			if err := repo.EnsureSchema(ctx); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return repo, func(context.Context) error { return db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func ping(ctx context.Context, repo repository.NameRepository) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return repo.Ping(ctx)
}

// openAssets returns the landing page store: the MinIO bucket when configured
// and reachable, otherwise the copy embedded in the binary.
func openAssets(ctx context.Context, cfg config.MinIOConfig, log *zap.Logger) storage.Storage {
	embedded := storage.NewEmbedded(web.Static())
	if cfg.Endpoint == "" {
		return embedded
	}

	log = log.With(zap.String("component", "storage"), zap.String("bucket", cfg.Bucket))

	bucket, err := storage.NewMinIO(ctx, cfg)
	if err != nil {
		log.Error("asset_store_unavailable", zap.Error(err), zap.String("detail", "serving embedded assets"))
		return embedded
	}

	seeded, err := storage.EnsureObject(ctx, bucket, embedded, web.IndexKey)
	if err != nil {
		log.Error("asset_seed_failed", zap.Error(err), zap.String("detail", "serving embedded assets"))
		return embedded
	}
	log.Info("asset_store_ready", zap.Bool("seeded", seeded))
	return bucket
}
