package purchasing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// TransitionEngine rechaza localmente (sin llamada de red) lo que la tabla no permite
// y delega el resto al OrderService.
type TransitionEngine struct {
	svc OrderService
}

// NewTransitionEngine construye el motor sobre el servicio de órdenes.
func NewTransitionEngine(svc OrderService) *TransitionEngine {
	return &TransitionEngine{svc: svc}
}

// RequestTransition pide al servicio pasar la orden a target.
// Devuelve *domain.InvalidTransitionError si la transición no es legal; los errores del
// servicio se devuelven tal cual.
func (e *TransitionEngine) RequestTransition(ctx context.Context, order entity.PurchaseOrder, target entity.OrderStatus) (*entity.PurchaseOrder, error) {
	if !CanTransition(order.Status, target) {
		return nil, &domain.InvalidTransitionError{From: order.Status, To: target}
	}
	return e.svc.UpdateStatus(ctx, order.ID, target)
}

// ConvertToReception crea una recepción a partir de la orden si está DELIVERED.
// En otro estado falla con domain.ErrReceptionNotAllowed sin llamar al servicio.
func (e *TransitionEngine) ConvertToReception(ctx context.Context, order entity.PurchaseOrder) (string, error) {
	if !CanConvertToReception(order.Status) {
		return "", fmt.Errorf("%w: estado actual %s (debe ser %s)",
			domain.ErrReceptionNotAllowed, order.Status, entity.OrderStatusDelivered)
	}
	return e.svc.ConvertToReception(ctx, order.ID)
}
