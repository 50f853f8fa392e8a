package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/application/purchasing"
)

// OrderHandler expone el ciclo de vida de las órdenes de compra (protegido).
type OrderHandler struct {
	uc *purchasing.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *purchasing.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener una orden de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetOrder(requestContext(c), paramID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Transitions godoc
// @Summary      Transiciones disponibles
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderTransitionsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transitions [get]
func (h *OrderHandler) Transitions(c *fiber.Ctx) error {
	res, err := h.uc.GetTransitions(requestContext(c), paramID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ChangeStatus godoc
// @Summary      Cambiar el estado de una orden
// @Description  La transición se valida antes de llamar al servicio de órdenes.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la orden"
// @Param        body  body  dto.ChangeStatusRequest  true  "estado destino"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.TransitionErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.ChangeStatus(requestContext(c), paramID(c), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ConvertToReception godoc
// @Summary      Convertir una orden entregada en recepción
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      201  {object}  dto.ReceptionCreatedResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reception [post]
func (h *OrderHandler) ConvertToReception(c *fiber.Ctx) error {
	res, err := h.uc.ConvertToReception(requestContext(c), paramID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
