package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	LocationUC    *usecase.LocationUseCase
	MovementUC    *usecase.MovementUseCase
	StockUC       *usecase.StockUseCase
	DiagnosticsUC *usecase.DiagnosticsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	diagnosticsHandler := NewDiagnosticsHandler(deps.DiagnosticsUC)
	app.Get("/", diagnosticsHandler.Root)
	app.Get("/test", diagnosticsHandler.Test)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Items (sin update ni delete: catálogo create-only)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)

	// Locations
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)

	// Movements (bitácora append-only)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)

	// Stock agregado
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/stock", stockHandler.CurrentStock)
}
