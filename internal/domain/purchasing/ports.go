package purchasing

import (
	"context"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// OrderService puerto hacia el servicio externo de órdenes/recepciones (REST).
// Los errores que devuelve se propagan sin reinterpretar.
type OrderService interface {
	GetByID(ctx context.Context, orderID string) (*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.PurchaseOrder, error)
	// ConvertToReception crea una recepción a partir de una orden entregada y devuelve su ID.
	ConvertToReception(ctx context.Context, orderID string) (string, error)
}
