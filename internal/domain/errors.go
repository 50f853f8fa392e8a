package domain

import (
	"errors"
	"fmt"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidTransition   = errors.New("transición de estado inválida")
	ErrReceptionNotAllowed = errors.New("la orden no puede convertirse en recepción")
)

// InvalidTransitionError se devuelve cuando se solicita un cambio de estado que la tabla
// de transiciones no permite. Se genera localmente, antes de cualquier llamada al backend.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

// Is permite errors.Is(err, ErrInvalidTransition).
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
