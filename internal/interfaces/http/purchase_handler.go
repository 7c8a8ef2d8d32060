package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// PurchaseHandler trata as rotas de compras (protegido).
type PurchaseHandler struct {
	uc *ledger.PurchaseUseCase
}

// NewPurchaseHandler constrói o handler.
func NewPurchaseHandler(uc *ledger.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra
// @Description  Credita o depósito, gera título a pagar se a prazo e dá baixa no item de pedido vinculado.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "Dados da compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPurchase(out, nil))
}

// Update godoc
// @Summary      Editar compra
// @Description  Estorna o efeito antigo e aplica o novo na mesma transação; sincroniza título e baixa de pedido.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID da compra"
// @Param        body  body  dto.PurchaseRequest  true  "Novos dados"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [put]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromPurchase(out, nil))
}

// Delete godoc
// @Summary      Excluir compra
// @Description  Estorna o crédito do saldo e remove o título. Título pago bloqueia a exclusão.
// @Tags         compras
// @Security     Bearer
// @Param        id  path  string  true  "ID da compra"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obter compra por ID
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	p, ob, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromPurchase(p, ob))
}
