package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// AdjustmentHandler trata as rotas de ajustes manuais de estoque (protegido).
type AdjustmentHandler struct {
	uc *ledger.AdjustmentUseCase
}

// NewAdjustmentHandler constrói o handler.
func NewAdjustmentHandler(uc *ledger.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Create aplica o delta assinado na conta (positivo entra, negativo sai).
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromAdjustment(out))
}

// Update estorna o delta antigo e aplica o novo.
func (h *AdjustmentHandler) Update(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromAdjustment(out))
}

// Delete reverte o delta. A exclusão de um ajuste positivo pode falhar com 409
// se o saldo já tiver sido consumido.
func (h *AdjustmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devolve o ajuste por ID.
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromAdjustment(out))
}
