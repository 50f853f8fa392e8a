package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/application/inventory"
)

// StockHandler maneja las consultas de stock por calidad (protegido).
type StockHandler struct {
	uc *inventory.StockQualityUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQualityUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stocks con desglose por calidad
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por dépôt"
// @Param        limit         query  int     false  "Máximo 100 (defecto 20)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.StockListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	res, err := h.uc.ListStocks(c.Context(), c.Query("warehouse_id"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// GetByID godoc
// @Summary      Obtener un stock con totales y desglose
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.StockSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetStock(c.Context(), paramID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Alerts godoc
// @Summary      Calidades en alerta
// @Description  Un elemento por (stock, calidad) con disponible <= umbral, en orden de stock y de desglose.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por dépôt"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stocks/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.uc.ListAlerts(c.Context(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(alerts),
		"alerts": alerts,
	})
}

// AlertReport godoc
// @Summary      Informe PDF de alertas
// @Tags         stocks
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id  query  string  false  "Filtrar por dépôt"
// @Success      200  {file}  binary
// @Router       /api/stocks/alerts/report.pdf [get]
func (h *StockHandler) AlertReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.AlertReportPDF(c.Context(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// QualitySummary godoc
// @Summary      Totales por calidad
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por dépôt"
// @Success      200  {array}  dto.QualityTotalsDTO
// @Router       /api/stocks/qualities/summary [get]
func (h *StockHandler) QualitySummary(c *fiber.Ctx) error {
	totals, err := h.uc.QualitySummary(c.Context(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(totals)
}
