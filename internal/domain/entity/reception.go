package entity

import "time"

// ReceptionStatus estado de una recepción. Es un vocabulario distinto al de OrderStatus
// (viene de los flujos de recepción/commande) y no se unifica con él.
type ReceptionStatus string

const (
	ReceptionStatusPending   ReceptionStatus = "EN_ATTENTE"
	ReceptionStatusConfirmed ReceptionStatus = "CONFIRMEE"
	ReceptionStatusDelivered ReceptionStatus = "LIVREE"
	ReceptionStatusCancelled ReceptionStatus = "ANNULEE"
)

// IsValid informa si el estado pertenece al vocabulario de recepciones.
func (s ReceptionStatus) IsValid() bool {
	switch s {
	case ReceptionStatusPending, ReceptionStatusConfirmed, ReceptionStatusDelivered, ReceptionStatusCancelled:
		return true
	default:
		return false
	}
}

// Reception recepción de mercancía creada a partir de una orden entregada.
type Reception struct {
	ID          string
	OrderID     string
	WarehouseID string
	Status      ReceptionStatus
	ReceivedAt  *time.Time
}
