package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/orders"
)

// OrderHandler trata as rotas de pedidos de compra (protegido).
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Criar pedido de compra
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido com itens"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	o, items, err := h.uc.Create(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(o, items))
}

// GetByID devolve o pedido com itens e quantidades atendidas.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	o, items, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromOrder(o, items))
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Description  Marca o pedido como CANCELADO (terminal). Novas compras vinculadas aos itens são recusadas.
// @Tags         pedidos
// @Security     Bearer
// @Param        id  path  string  true  "ID do pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/cancelar [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
