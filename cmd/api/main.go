package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bodega-api/internal/interfaces/http"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewDocumentStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema de documentos")
	}

	itemUC := usecase.NewItemUseCase(store)
	locationUC := usecase.NewLocationUseCase(store)
	movementUC := usecase.NewMovementUseCase(store)
	stockUC := usecase.NewStockUseCase(store)
	diagnosticsUC := usecase.NewDiagnosticsUseCase(store,
		cfg.DB.DatabaseURL != "", cfg.DB.DBName != "")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Todo error que escape de un handler se convierte en 500 genérico
		// con el mensaje subyacente; no hay reintentos ni distinción entre
		// fallas transitorias y permanentes.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	// CORS abierto, igual que el frontend de bodega lo espera
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(httpRouter.MetricsMiddleware())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		LocationUC:    locationUC,
		MovementUC:    movementUC,
		StockUC:       stockUC,
		DiagnosticsUC: diagnosticsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
