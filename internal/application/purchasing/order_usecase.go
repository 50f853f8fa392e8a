// Package purchasing casos de uso sobre órdenes de compra: consulta de transiciones,
// cambio de estado y conversión en recepción, delegando en el servicio de órdenes.
package purchasing

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/inventory"
	"github.com/jhoicas/Carrelage-api/internal/domain/purchasing"
)

// OrderUseCase orquesta la lectura de la orden y el motor de transiciones.
type OrderUseCase struct {
	svc    purchasing.OrderService
	engine *purchasing.TransitionEngine
	log    zerolog.Logger
}

// NewOrderUseCase construye el caso de uso sobre el servicio de órdenes.
func NewOrderUseCase(svc purchasing.OrderService, log zerolog.Logger) *OrderUseCase {
	return &OrderUseCase{
		svc:    svc,
		engine: purchasing.NewTransitionEngine(svc),
		log:    log,
	}
}

// GetOrder devuelve la orden tal como la conoce el servicio.
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// GetTransitions estado actual de la orden y los estados a los que puede pasar.
func (uc *OrderUseCase) GetTransitions(ctx context.Context, orderID string) (*dto.OrderTransitionsResponse, error) {
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	next := purchasing.AvailableTransitions(order.Status)
	options := make([]dto.StatusOptionDTO, 0, len(next))
	for _, s := range next {
		options = append(options, dto.StatusOptionDTO{Status: string(s), Label: purchasing.StatusLabel(s)})
	}
	return &dto.OrderTransitionsResponse{
		OrderID:               order.ID,
		Reference:             order.Reference,
		Status:                string(order.Status),
		StatusLabel:           purchasing.StatusLabel(order.Status),
		Terminal:              purchasing.IsTerminal(order.Status),
		AvailableTransitions:  options,
		CanConvertToReception: purchasing.CanConvertToReception(order.Status),
	}, nil
}

// ChangeStatus pide pasar la orden a target. Una transición ilegal se rechaza con
// *domain.InvalidTransitionError sin llamar al servicio; los errores del servicio se devuelven tal cual.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, orderID, target string) (*dto.OrderResponse, error) {
	status := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(target)))
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	log := uc.log.With().
		Str("order_id", order.ID).
		Str("from", string(order.Status)).
		Str("to", string(status)).
		Logger()

	updated, err := uc.engine.RequestTransition(ctx, *order, status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			log.Warn().Msg("transición rechazada")
		} else {
			log.Error().Err(err).Msg("el servicio de órdenes rechazó el cambio de estado")
		}
		return nil, err
	}
	if updated == nil {
		updated = order
		updated.Status = status
	}
	log.Info().Msg("estado de orden actualizado")

	out := toOrderResponse(updated)
	return &out, nil
}

// ConvertToReception crea la recepción de una orden entregada.
// Falla con domain.ErrReceptionNotAllowed si la orden no está DELIVERED.
func (uc *OrderUseCase) ConvertToReception(ctx context.Context, orderID string) (*dto.ReceptionCreatedResponse, error) {
	order, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	receptionID, err := uc.engine.ConvertToReception(ctx, *order)
	if err != nil {
		if errors.Is(err, domain.ErrReceptionNotAllowed) {
			uc.log.Warn().Str("order_id", order.ID).Str("status", string(order.Status)).Msg("conversión en recepción rechazada")
		} else {
			uc.log.Error().Err(err).Str("order_id", order.ID).Msg("el servicio de órdenes rechazó la conversión")
		}
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("reception_id", receptionID).Msg("recepción creada")
	return &dto.ReceptionCreatedResponse{OrderID: order.ID, ReceptionID: receptionID}, nil
}

func (uc *OrderUseCase) load(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.svc.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// StatusCatalog catálogo de estados de orden en orden de ciclo de vida.
func StatusCatalog() []dto.CatalogEntryDTO {
	statuses := entity.OrderStatuses()
	out := make([]dto.CatalogEntryDTO, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, dto.CatalogEntryDTO{Code: string(s), Label: purchasing.StatusLabel(s)})
	}
	return out
}

func toOrderResponse(o *entity.PurchaseOrder) dto.OrderResponse {
	lines := make([]dto.OrderLineDTO, 0, len(o.Lines))
	for _, l := range o.Lines {
		line := dto.OrderLineDTO{
			ProductID:          l.ProductID,
			ProductDescription: l.ProductDescription,
			Quality:            string(l.Quality),
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice,
			Total:              l.Total(),
		}
		if l.Quality != "" {
			line.QualityLabel = inventory.QualityLabel(l.Quality)
		}
		lines = append(lines, line)
	}
	out := dto.OrderResponse{
		ID:           o.ID,
		Reference:    o.Reference,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		WarehouseID:  o.WarehouseID,
		Status:       string(o.Status),
		StatusLabel:  purchasing.StatusLabel(o.Status),
		ExpectedDate: o.ExpectedDate,
		Total:        o.Total(),
		Lines:        lines,
	}
	if !o.OrderDate.IsZero() {
		d := o.OrderDate
		out.OrderDate = &d
	}
	return out
}
