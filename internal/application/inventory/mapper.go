package inventory

import (
	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/inventory"
)

func colorDTO(c entity.ColorPair) dto.ColorDTO {
	return dto.ColorDTO{Text: c.Text, Background: c.Background}
}

func toStockQualityDTO(sq entity.StockQuality) dto.StockQualityDTO {
	level := inventory.AlertLevelFor(sq.Available(), sq.AlertThreshold)
	out := dto.StockQualityDTO{
		ID:                sq.ID,
		Quality:           string(sq.Quality),
		QualityLabel:      inventory.QualityLabel(sq.Quality),
		QualityColor:      colorDTO(inventory.QualityColor(sq.Quality)),
		Badge:             inventory.QualityBadgeColor(sq.Quality),
		AvailableQuantity: sq.AvailableQuantity,
		ReservedQuantity:  sq.ReservedQuantity,
		AlertThreshold:    sq.AlertThreshold,
		HeldQuantity:      inventory.HeldQuantity(sq),
		AlertLevel:        string(level),
		AlertLabel:        inventory.AlertLevelLabel(level),
		AlertColor:        colorDTO(inventory.AlertLevelColor(level)),
		InAlert:           inventory.IsInAlert(sq),
	}
	if !sq.LastUpdated.IsZero() {
		t := sq.LastUpdated
		out.LastUpdated = &t
	}
	return out
}

func toStockSummaryDTO(stock entity.Stock) dto.StockSummaryDTO {
	qualities := make([]dto.StockQualityDTO, 0, len(stock.QualityBreakdown))
	for _, sq := range stock.QualityBreakdown {
		qualities = append(qualities, toStockQualityDTO(sq))
	}
	return dto.StockSummaryDTO{
		ID:                 stock.ID,
		ProductID:          stock.ProductID,
		ProductDescription: stock.ProductDescription,
		WarehouseID:        stock.WarehouseID,
		WarehouseName:      stock.WarehouseName,
		TotalAvailable:     inventory.TotalAvailable(stock),
		TotalReserved:      inventory.TotalReserved(stock),
		Qualities:          qualities,
	}
}

func toAlertEntryDTO(e entity.AlertEntry) dto.AlertEntryDTO {
	out := dto.AlertEntryDTO{
		StockID:            e.StockID,
		StockQualityID:     e.StockQuality.ID,
		ProductID:          e.ProductID,
		ProductDescription: e.ProductDescription,
		WarehouseID:        e.WarehouseID,
		WarehouseName:      e.WarehouseName,
		Quality:            string(e.StockQuality.Quality),
		QualityLabel:       inventory.QualityLabel(e.StockQuality.Quality),
		AvailableQuantity:  e.StockQuality.AvailableQuantity,
		ReservedQuantity:   e.StockQuality.ReservedQuantity,
		AlertThreshold:     e.StockQuality.AlertThreshold,
		Level:              string(e.Level),
		LevelLabel:         inventory.AlertLevelLabel(e.Level),
		LevelColor:         colorDTO(inventory.AlertLevelColor(e.Level)),
	}
	if !e.StockQuality.LastUpdated.IsZero() {
		t := e.StockQuality.LastUpdated
		out.LastUpdated = &t
	}
	return out
}

func toQualityTotalsDTO(t inventory.QualityTotals) dto.QualityTotalsDTO {
	return dto.QualityTotalsDTO{
		Quality:      string(t.Quality),
		QualityLabel: inventory.QualityLabel(t.Quality),
		Available:    t.Available,
		Reserved:     t.Reserved,
		Alerts:       t.Alerts,
	}
}

// QualityCatalog catálogo de grados de calidad con etiqueta, colores y badge.
func QualityCatalog() []dto.CatalogEntryDTO {
	out := make([]dto.CatalogEntryDTO, 0, 3)
	for _, q := range entity.Qualities() {
		c := colorDTO(inventory.QualityColor(q))
		out = append(out, dto.CatalogEntryDTO{
			Code:  string(q),
			Label: inventory.QualityLabel(q),
			Color: &c,
			Badge: inventory.QualityBadgeColor(q),
		})
	}
	return out
}

// AlertLevelCatalog catálogo de niveles de alerta.
func AlertLevelCatalog() []dto.CatalogEntryDTO {
	levels := inventory.AlertLevels()
	out := make([]dto.CatalogEntryDTO, 0, len(levels))
	for _, l := range levels {
		c := colorDTO(inventory.AlertLevelColor(l))
		out = append(out, dto.CatalogEntryDTO{Code: string(l), Label: inventory.AlertLevelLabel(l), Color: &c})
	}
	return out
}
