package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
)

// handleError traduz erros de domínio para respostas HTTP. Violações de
// invariante (estoque insuficiente, saldo de pedido) são conflito, não
// erro de validação: o request era válido, o estado é que não permite.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSameLocation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderExceeded):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_EXCEEDED", Message: err.Error()})
	case errors.Is(err, domain.ErrObligationPaid):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OBLIGATION_PAID", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderCanceled):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ORDER_CANCELED", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
}
