package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/deposits"
	"github.com/rvilela/AgroCampo-api/internal/application/dto"
)

// DepositHandler trata as rotas de depósitos/fazendas (protegido).
type DepositHandler struct {
	uc *deposits.UseCase
}

// NewDepositHandler constrói o handler.
func NewDepositHandler(uc *deposits.UseCase) *DepositHandler {
	return &DepositHandler{uc: uc}
}

// Create registra um depósito ou fazenda do tenant.
func (h *DepositHandler) Create(c *fiber.Ctx) error {
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromDeposit(out))
}

// GetByID devolve o depósito por ID.
func (h *DepositHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromDeposit(out))
}

// List devolve os depósitos do tenant.
func (h *DepositHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetTenantID(c))
	if err != nil {
		return handleError(c, err)
	}
	out := make([]*dto.DepositResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.FromDeposit(d))
	}
	return c.JSON(out)
}
