package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de compra (vocabulario de órdenes de compra).
type OrderStatus string

// Estados de la orden de compra. DRAFT es el estado inicial; CANCELLED es terminal.
const (
	OrderStatusDraft              OrderStatus = "DRAFT"
	OrderStatusPlaced             OrderStatus = "PLACED"
	OrderStatusPartiallyDelivered OrderStatus = "PARTIALLY_DELIVERED"
	OrderStatusDelivered          OrderStatus = "DELIVERED"
	OrderStatusValidated          OrderStatus = "VALIDATED"
	OrderStatusCancelled          OrderStatus = "CANCELLED"
)

// OrderStatuses devuelve los estados definidos en orden de ciclo de vida.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusDraft,
		OrderStatusPlaced,
		OrderStatusPartiallyDelivered,
		OrderStatusDelivered,
		OrderStatusValidated,
		OrderStatusCancelled,
	}
}

// PurchaseOrder cabecera de una orden de compra a proveedor.
type PurchaseOrder struct {
	ID           string
	Reference    string
	SupplierID   string
	SupplierName string
	WarehouseID  string
	Status       OrderStatus
	OrderDate    time.Time
	ExpectedDate *time.Time
	Lines        []OrderLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderLine línea de una orden de compra.
type OrderLine struct {
	ProductID          string
	ProductDescription string
	Quality            Quality
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
}

// Total importe de la línea (cantidad * precio unitario).
func (l OrderLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Total suma de las líneas de la orden.
func (o PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Total())
	}
	return total
}
