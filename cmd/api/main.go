package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Carrelage-api/internal/application/inventory"
	"github.com/jhoicas/Carrelage-api/internal/application/purchasing"
	"github.com/jhoicas/Carrelage-api/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/Carrelage-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Carrelage-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Carrelage-api/internal/interfaces/http"
	"github.com/jhoicas/Carrelage-api/pkg/config"
	"github.com/jhoicas/Carrelage-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		AppName: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockQualityRepository(pool)
	reportGenerator := infrapdf.NewAlertReportGenerator(cfg.App.Name)
	stockUC := inventory.NewStockQualityUseCase(stockRepo, reportGenerator, log.Component("stocks"))

	orderClient := backend.NewOrderClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.APIToken,
		Timeout: cfg.Backend.Timeout,
	}, log.Component("backend"))
	orderUC := purchasing.NewOrderUseCase(orderClient, log.Component("orders"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carrelage API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:   stockUC,
		OrderUC:   orderUC,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		Logger:    log.Component("http"),
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
