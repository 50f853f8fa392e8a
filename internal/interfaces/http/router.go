package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Carrelage-api/internal/application/inventory"
	"github.com/jhoicas/Carrelage-api/internal/application/purchasing"
	"github.com/jhoicas/Carrelage-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC   *inventory.StockQualityUseCase
	OrderUC   *purchasing.OrderUseCase
	JWTSecret string
	JWTIssuer string
	Logger    zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Catálogos (público)
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler()
	catalog.Get("/qualities", catalogHandler.Qualities)
	catalog.Get("/alert-levels", catalogHandler.AlertLevels)
	catalog.Get("/order-statuses", catalogHandler.OrderStatuses)

	// Rutas protegidas (requieren Bearer Token)
	auth := AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)

	// Stocks (protegido, lectura para cualquier rol)
	stocks := api.Group("/stocks", auth)
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/alerts", stockHandler.Alerts)
	stocks.Get("/alerts/report.pdf", stockHandler.AlertReport)
	stocks.Get("/qualities/summary", stockHandler.QualitySummary)
	stocks.Get("/:id", stockHandler.GetByID)

	// Órdenes de compra (protegido; las mutaciones exigen rol)
	orders := api.Group("/orders", auth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/transitions", orderHandler.Transitions)
	orders.Patch("/:id/status", RequireRole(jwt.RoleAdmin, jwt.RoleAcheteur), orderHandler.ChangeStatus)
	orders.Post("/:id/reception", RequireRole(jwt.RoleAdmin, jwt.RoleMagasinier), orderHandler.ConvertToReception)
}
