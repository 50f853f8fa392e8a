package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/inventory"
	"github.com/jhoicas/Carrelage-api/internal/domain/repository"
)

// scanPageSize tamaño de página al recorrer todos los stocks (alertas, resumen, informe).
const scanPageSize = 100

// StockQualityUseCase consultas sobre el stock desglosado por calidad: listado, detalle,
// alertas, resumen por grado e informe PDF.
type StockQualityUseCase struct {
	repo   repository.StockQualityRepository
	report AlertReportGenerator
	log    zerolog.Logger
	now    func() time.Time
}

// NewStockQualityUseCase construye el caso de uso. report puede ser nil si no se expone el informe.
func NewStockQualityUseCase(repo repository.StockQualityRepository, report AlertReportGenerator, log zerolog.Logger) *StockQualityUseCase {
	return &StockQualityUseCase{repo: repo, report: report, log: log, now: time.Now}
}

// ListStocks lista stocks con totales y desglose, paginado.
func (uc *StockQualityUseCase) ListStocks(ctx context.Context, warehouseID string, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	stocks, err := uc.repo.ListStocks(ctx, strings.TrimSpace(warehouseID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockSummaryDTO, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, toStockSummaryDTO(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	}, nil
}

// GetStock devuelve un stock con su desglose. ErrNotFound si no existe.
func (uc *StockQualityUseCase) GetStock(ctx context.Context, id string) (*dto.StockSummaryDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.repo.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	out := toStockSummaryDTO(*stock)
	return &out, nil
}

// ListAlerts grados en alerta de todos los stocks (de una bodega si warehouseID no es vacío),
// en el orden del repositorio y del desglose.
func (uc *StockQualityUseCase) ListAlerts(ctx context.Context, warehouseID string) ([]dto.AlertEntryDTO, error) {
	stocks, err := uc.loadAll(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	return alertDTOs(inventory.CollectAlerts(stocks)), nil
}

// QualitySummary acumulados por grado de calidad.
func (uc *StockQualityUseCase) QualitySummary(ctx context.Context, warehouseID string) ([]dto.QualityTotalsDTO, error) {
	stocks, err := uc.loadAll(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	return totalsDTOs(inventory.SummarizeByQuality(stocks)), nil
}

// AlertReportPDF genera el informe PDF de alertas. Devuelve los bytes y el nombre de fichero sugerido.
func (uc *StockQualityUseCase) AlertReportPDF(ctx context.Context, warehouseID string) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("informe de alertas no configurado")
	}
	stocks, err := uc.loadAll(ctx, warehouseID)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	report := AlertReport{
		Title:       "Alertes de stock",
		WarehouseID: strings.TrimSpace(warehouseID),
		GeneratedAt: now,
		Alerts:      alertDTOs(inventory.CollectAlerts(stocks)),
		Totals:      totalsDTOs(inventory.SummarizeByQuality(stocks)),
	}
	pdfBytes, err := uc.report.GenerateAlertReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("informe de alertas: %w", err)
	}
	uc.log.Info().
		Int("alerts", len(report.Alerts)).
		Str("warehouse_id", report.WarehouseID).
		Msg("informe de alertas generado")
	return pdfBytes, "alertes-stock-" + now.Format("20060102") + ".pdf", nil
}

// loadAll recorre el repositorio página a página hasta agotar los resultados.
func (uc *StockQualityUseCase) loadAll(ctx context.Context, warehouseID string) ([]entity.Stock, error) {
	warehouseID = strings.TrimSpace(warehouseID)
	var all []entity.Stock
	for offset := 0; ; offset += scanPageSize {
		page, err := uc.repo.ListStocks(ctx, warehouseID, scanPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < scanPageSize {
			return all, nil
		}
	}
}

func alertDTOs(entries []entity.AlertEntry) []dto.AlertEntryDTO {
	out := make([]dto.AlertEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAlertEntryDTO(e))
	}
	return out
}

func totalsDTOs(totals []inventory.QualityTotals) []dto.QualityTotalsDTO {
	out := make([]dto.QualityTotalsDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, toQualityTotalsDTO(t))
	}
	return out
}
