package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// SaleHandler trata as rotas de vendas (protegido).
type SaleHandler struct {
	uc *ledger.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *ledger.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venda
// @Description  Debita o depósito e gera título a receber se a prazo. Falha com 409 se não houver saldo.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSale(out, nil))
}

// Update godoc
// @Summary      Editar venda
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID da venda"
// @Param        body  body  dto.SaleRequest  true  "Novos dados"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromSale(out, nil))
}

// Delete godoc
// @Summary      Excluir venda
// @Description  Devolve a quantidade ao depósito e remove o título. Título pago bloqueia a exclusão.
// @Tags         vendas
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obter venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	s, ob, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromSale(s, ob))
}
