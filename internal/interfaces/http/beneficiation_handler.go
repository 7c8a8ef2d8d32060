package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// BeneficiationHandler trata as rotas de beneficiamento (protegido).
type BeneficiationHandler struct {
	uc *ledger.BeneficiationUseCase
}

// NewBeneficiationHandler constrói o handler.
func NewBeneficiationHandler(uc *ledger.BeneficiationUseCase) *BeneficiationHandler {
	return &BeneficiationHandler{uc: uc}
}

// Create credita o produto resultante no depósito.
func (h *BeneficiationHandler) Create(c *fiber.Ctx) error {
	var in dto.BeneficiationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromBeneficiation(out))
}

// Update estorna o crédito antigo e aplica o novo.
func (h *BeneficiationHandler) Update(c *fiber.Ctx) error {
	var in dto.BeneficiationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromBeneficiation(out))
}

// Delete estorna o crédito do produto resultante.
func (h *BeneficiationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devolve o beneficiamento por ID.
func (h *BeneficiationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromBeneficiation(out))
}
