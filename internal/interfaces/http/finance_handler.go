package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/finance"
)

// FinanceHandler trata as rotas de títulos financeiros (protegido).
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar títulos financeiros
// @Description  Filtra por tipo (PAGAR/RECEBER) e status (PENDENTE, PAGA, VENCIDA, CANCELADA). VENCIDA é derivada na leitura.
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "PAGAR ou RECEBER"
// @Param        status  query  string  false  "Status do título"
// @Success      200  {array}  dto.ObligationDTO
// @Router       /api/financeiro [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetTenantID(c), c.Query("kind"), c.Query("status"))
	if err != nil {
		return handleError(c, err)
	}
	out := make([]*dto.ObligationDTO, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromObligation(o))
	}
	return c.JSON(out)
}

// Settle dá baixa no título (PENDENTE/VENCIDA -> PAGA). Idempotente se já paga.
func (h *FinanceHandler) Settle(c *fiber.Ctx) error {
	o, err := h.uc.Settle(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromObligation(o))
}

// Cancel cancela o título. Título pago não pode ser cancelado.
func (h *FinanceHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
