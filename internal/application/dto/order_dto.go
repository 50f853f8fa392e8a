package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOptionDTO estado con su etiqueta visible.
type StatusOptionDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

// OrderTransitionsResponse respuesta de GET /api/orders/:id/transitions.
type OrderTransitionsResponse struct {
	OrderID               string            `json:"order_id"`
	Reference             string            `json:"reference,omitempty"`
	Status                string            `json:"status"`
	StatusLabel           string            `json:"status_label"`
	Terminal              bool              `json:"terminal"`
	AvailableTransitions  []StatusOptionDTO `json:"available_transitions"`
	CanConvertToReception bool              `json:"can_convert_to_reception"`
}

// ChangeStatusRequest body para PATCH /api/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineDTO línea de una orden.
type OrderLineDTO struct {
	ProductID          string          `json:"product_id"`
	ProductDescription string          `json:"product_description,omitempty"`
	Quality            string          `json:"quality,omitempty"`
	QualityLabel       string          `json:"quality_label,omitempty"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Total              decimal.Decimal `json:"total"`
}

// OrderResponse orden de compra tal como la devuelve la API.
type OrderResponse struct {
	ID           string          `json:"id"`
	Reference    string          `json:"reference,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	WarehouseID  string          `json:"warehouse_id,omitempty"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	OrderDate    *time.Time      `json:"order_date,omitempty"`
	ExpectedDate *time.Time      `json:"expected_date,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Lines        []OrderLineDTO  `json:"lines"`
}

// ReceptionCreatedResponse respuesta de POST /api/orders/:id/reception.
type ReceptionCreatedResponse struct {
	OrderID     string `json:"order_id"`
	ReceptionID string `json:"reception_id"`
}

// TransitionErrorResponse cuerpo del 409 cuando la transición no es legal.
type TransitionErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
}
