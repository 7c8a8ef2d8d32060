package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// StockHandler trata as rotas de consulta de estoque: extrato e saldo (protegido).
type StockHandler struct {
	builder *ledger.StatementBuilder
}

// NewStockHandler constrói o handler.
func NewStockHandler(builder *ledger.StatementBuilder) *StockHandler {
	return &StockHandler{builder: builder}
}

// Statement godoc
// @Summary      Extrato da conta de estoque
// @Description  Reconstrói o extrato de (produto, depósito) com saldo acumulado, do mais recente ao mais antigo.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        product      query  string  true  "Produto"
// @Param        location_id  query  string  true  "ID do depósito"
// @Success      200  {object}  dto.StatementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/extrato [get]
func (h *StockHandler) Statement(c *fiber.Ctx) error {
	product := c.Query("product")
	locationID := c.Query("location_id")
	entries, err := h.builder.Build(c.UserContext(), GetTenantID(c), product, locationID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FromStatement(product, locationID, entries))
}

// Balance devolve o saldo atual da conta (produto, depósito).
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	product := c.Query("product")
	locationID := c.Query("location_id")
	balance, err := h.builder.Balance(c.UserContext(), GetTenantID(c), product, locationID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"product":     product,
		"location_id": locationID,
		"balance":     balance,
	})
}
