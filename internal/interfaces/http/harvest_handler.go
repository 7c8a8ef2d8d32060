package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// HarvestHandler trata as rotas de colheitas (protegido).
type HarvestHandler struct {
	uc *ledger.HarvestUseCase
}

// NewHarvestHandler constrói o handler.
func NewHarvestHandler(uc *ledger.HarvestUseCase) *HarvestHandler {
	return &HarvestHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar colheita
// @Tags         colheitas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HarvestRequest  true  "Dados da colheita"
// @Success      201   {object}  dto.HarvestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/colheitas [post]
func (h *HarvestHandler) Create(c *fiber.Ctx) error {
	var in dto.HarvestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromHarvest(out))
}

// Update edita a colheita reaplicando o efeito no saldo.
func (h *HarvestHandler) Update(c *fiber.Ctx) error {
	var in dto.HarvestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromHarvest(out))
}

// Delete exclui a colheita estornando o crédito do saldo.
func (h *HarvestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devolve a colheita por ID.
func (h *HarvestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromHarvest(out))
}
