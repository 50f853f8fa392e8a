package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carrelage-api/internal/application/inventory"
	"github.com/jhoicas/Carrelage-api/internal/application/purchasing"
)

// CatalogHandler catálogos públicos para la UI: calidades, niveles de alerta y estados de orden.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Qualities godoc
// @Summary  Grados de calidad
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  dto.CatalogEntryDTO
// @Router   /api/catalog/qualities [get]
func (h *CatalogHandler) Qualities(c *fiber.Ctx) error {
	return c.JSON(inventory.QualityCatalog())
}

// AlertLevels godoc
// @Summary  Niveles de alerta
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  dto.CatalogEntryDTO
// @Router   /api/catalog/alert-levels [get]
func (h *CatalogHandler) AlertLevels(c *fiber.Ctx) error {
	return c.JSON(inventory.AlertLevelCatalog())
}

// OrderStatuses godoc
// @Summary  Estados de orden de compra
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  dto.CatalogEntryDTO
// @Router   /api/catalog/order-statuses [get]
func (h *CatalogHandler) OrderStatuses(c *fiber.Ctx) error {
	return c.JSON(purchasing.StatusCatalog())
}
