package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuality nivel de stock de un grado de calidad en un producto+almacén.
// Las cantidades son punteros: nil significa "ausente" y se trata como 0.
// AlertThreshold nil significa que nunca se alerta por umbral.
type StockQuality struct {
	ID                string // vacío hasta persistir
	Quality           Quality
	AvailableQuantity *decimal.Decimal
	ReservedQuantity  *decimal.Decimal
	AlertThreshold    *decimal.Decimal
	LastUpdated       time.Time

	// Referencias de solo lectura (visualización).
	ProductID          string
	ProductDescription string
	WarehouseID        string
	WarehouseName      string
}

// Available devuelve la cantidad disponible o 0 si está ausente.
func (sq StockQuality) Available() decimal.Decimal {
	if sq.AvailableQuantity == nil {
		return decimal.Zero
	}
	return *sq.AvailableQuantity
}

// Reserved devuelve la cantidad reservada o 0 si está ausente.
func (sq StockQuality) Reserved() decimal.Decimal {
	if sq.ReservedQuantity == nil {
		return decimal.Zero
	}
	return *sq.ReservedQuantity
}

// Stock inventario de un producto en un almacén, desglosado por calidad.
// QualityBreakdown no debe repetir grado; un grado sin entrada equivale a cero.
type Stock struct {
	ID                 string
	ProductID          string
	ProductDescription string
	WarehouseID        string
	WarehouseName      string
	QualityBreakdown   []StockQuality
}
