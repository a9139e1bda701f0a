package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"namesapi/internal/metrics"
	"namesapi/internal/service"
	"namesapi/internal/storage"
	"namesapi/internal/web"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: each route maps to one service or dependency call.
func RegisterRoutes(app *fiber.App, db Pinger, nameSvc service.NameService, assets storage.Storage, gatherer prometheus.Gatherer) {
	app.Get("/", Index(assets, web.IndexKey))

	app.Get("/names", ListNames(nameSvc))
	app.Post("/names", CreateName(nameSvc))
	app.Delete("/names/:id", DeleteName(nameSvc))

	app.Get("/metrics", metrics.Handler(gatherer))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
}
