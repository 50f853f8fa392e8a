package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/infrastructure/backend"
)

// writeError traduce errores de dominio y del backend a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var transition *domain.InvalidTransitionError
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &transition):
		return c.Status(fiber.StatusConflict).JSON(dto.TransitionErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: transition.Error(),
			From:    string(transition.From),
			To:      string(transition.To),
		})
	case errors.Is(err, domain.ErrReceptionNotAllowed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RECEPTION_NOT_ALLOWED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.As(err, &apiErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: apiErr.Message})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "BACKEND_TIMEOUT", Message: "el servicio de órdenes no respondió a tiempo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// requestContext contexto de la petición con su X-Request-ID, que el cliente del backend reenvía.
func requestContext(c *fiber.Ctx) context.Context {
	return backend.WithRequestID(c.Context(), GetRequestID(c))
}

// paramID copia el parámetro :id; Fiber reutiliza el buffer de la petición.
func paramID(c *fiber.Ctx) string {
	return strings.Clone(c.Params("id"))
}
