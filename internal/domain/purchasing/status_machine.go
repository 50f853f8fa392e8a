// Package purchasing define el ciclo de vida de las órdenes de compra como máquina de estados
// y el motor que valida localmente cada cambio antes de delegarlo al servicio de órdenes.
package purchasing

import "github.com/jhoicas/Carrelage-api/internal/domain/entity"

// allowedTransitions tabla de transiciones legales. Grafo acíclico sin auto-transiciones;
// CANCELLED es alcanzable en un paso desde cualquier estado no terminal.
var allowedTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusDraft: {
		entity.OrderStatusPlaced,
		entity.OrderStatusCancelled,
	},
	entity.OrderStatusPlaced: {
		entity.OrderStatusPartiallyDelivered,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	},
	entity.OrderStatusPartiallyDelivered: {
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	},
	entity.OrderStatusDelivered: {
		entity.OrderStatusValidated,
		entity.OrderStatusCancelled,
	},
	entity.OrderStatusValidated: {
		entity.OrderStatusCancelled,
	},
	entity.OrderStatusCancelled: {},
}

// InitialStatus estado de toda orden recién creada.
func InitialStatus() entity.OrderStatus {
	return entity.OrderStatusDraft
}

// AvailableTransitions devuelve los estados a los que se puede pasar desde current.
// Para CANCELLED o un estado desconocido devuelve un slice vacío (nunca nil).
// El slice es una copia: el llamador puede modificarlo.
func AvailableTransitions(current entity.OrderStatus) []entity.OrderStatus {
	allowed, ok := allowedTransitions[current]
	if !ok {
		return []entity.OrderStatus{}
	}
	out := make([]entity.OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransition informa si to está entre las transiciones disponibles desde from.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal informa si el estado no tiene transiciones salientes.
func IsTerminal(s entity.OrderStatus) bool {
	return len(allowedTransitions[s]) == 0
}

// CanConvertToReception solo una orden DELIVERED puede originar una recepción.
// No es una transición de la tabla: produce otra entidad, no cambia el estado de la orden.
func CanConvertToReception(current entity.OrderStatus) bool {
	return current == entity.OrderStatusDelivered
}

// StatusLabel etiqueta visible del estado; un estado desconocido se devuelve tal cual.
func StatusLabel(s entity.OrderStatus) string {
	switch s {
	case entity.OrderStatusDraft:
		return "Brouillon"
	case entity.OrderStatusPlaced:
		return "Passée"
	case entity.OrderStatusPartiallyDelivered:
		return "Partiellement livrée"
	case entity.OrderStatusDelivered:
		return "Livrée"
	case entity.OrderStatusValidated:
		return "Validée"
	case entity.OrderStatusCancelled:
		return "Annulée"
	default:
		return string(s)
	}
}
