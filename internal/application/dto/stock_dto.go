package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQualityDTO fila de un grado de calidad con sus valores derivados.
// Las cantidades ausentes se serializan como null.
type StockQualityDTO struct {
	ID                string           `json:"id,omitempty"`
	Quality           string           `json:"quality"`
	QualityLabel      string           `json:"quality_label"`
	QualityColor      ColorDTO         `json:"quality_color"`
	Badge             string           `json:"badge"`
	AvailableQuantity *decimal.Decimal `json:"available_quantity"`
	ReservedQuantity  *decimal.Decimal `json:"reserved_quantity"`
	AlertThreshold    *decimal.Decimal `json:"alert_threshold"`
	HeldQuantity      decimal.Decimal  `json:"held_quantity"`
	AlertLevel        string           `json:"alert_level"`
	AlertLabel        string           `json:"alert_label"`
	AlertColor        ColorDTO         `json:"alert_color"`
	InAlert           bool             `json:"in_alert"`
	LastUpdated       *time.Time       `json:"last_updated,omitempty"`
}

// StockSummaryDTO stock de un producto en una bodega con totales y desglose.
type StockSummaryDTO struct {
	ID                 string            `json:"id"`
	ProductID          string            `json:"product_id"`
	ProductDescription string            `json:"product_description"`
	WarehouseID        string            `json:"warehouse_id"`
	WarehouseName      string            `json:"warehouse_name"`
	TotalAvailable     decimal.Decimal   `json:"total_available"`
	TotalReserved      decimal.Decimal   `json:"total_reserved"`
	Qualities          []StockQualityDTO `json:"qualities"`
}

// StockListResponse respuesta de GET /api/stocks.
type StockListResponse struct {
	Items []StockSummaryDTO `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AlertEntryDTO grado de calidad en alerta con la identidad de su stock.
type AlertEntryDTO struct {
	StockID            string           `json:"stock_id"`
	StockQualityID     string           `json:"stock_quality_id,omitempty"`
	ProductID          string           `json:"product_id"`
	ProductDescription string           `json:"product_description"`
	WarehouseID        string           `json:"warehouse_id"`
	WarehouseName      string           `json:"warehouse_name"`
	Quality            string           `json:"quality"`
	QualityLabel       string           `json:"quality_label"`
	AvailableQuantity  *decimal.Decimal `json:"available_quantity"`
	ReservedQuantity   *decimal.Decimal `json:"reserved_quantity"`
	AlertThreshold     *decimal.Decimal `json:"alert_threshold"`
	Level              string           `json:"level"`
	LevelLabel         string           `json:"level_label"`
	LevelColor         ColorDTO         `json:"level_color"`
	LastUpdated        *time.Time       `json:"last_updated,omitempty"`
}

// QualityTotalsDTO acumulado por grado de calidad.
type QualityTotalsDTO struct {
	Quality      string          `json:"quality"`
	QualityLabel string          `json:"quality_label"`
	Available    decimal.Decimal `json:"available"`
	Reserved     decimal.Decimal `json:"reserved"`
	Alerts       int             `json:"alerts"`
}

// StockQualityImportRow fila del fichero de importación (stock_id;quality;available;reserved;threshold).
// Line es el número de línea en el fichero, para los mensajes de error.
type StockQualityImportRow struct {
	Line      int
	StockID   string
	Quality   string
	Available *decimal.Decimal
	Reserved  *decimal.Decimal
	Threshold *decimal.Decimal
}

// ImportResultDTO resultado de una importación.
type ImportResultDTO struct {
	Stocks int      `json:"stocks"`
	Rows   int      `json:"rows"`
	RowIDs []string `json:"row_ids"`
}
