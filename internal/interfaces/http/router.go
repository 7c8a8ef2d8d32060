package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvilela/AgroCampo-api/internal/application/deposits"
	"github.com/rvilela/AgroCampo-api/internal/application/finance"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/application/orders"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	HarvestUC       *ledger.HarvestUseCase
	PurchaseUC      *ledger.PurchaseUseCase
	SaleUC          *ledger.SaleUseCase
	TransferUC      *ledger.TransferUseCase
	AdjustmentUC    *ledger.AdjustmentUseCase
	BeneficiationUC *ledger.BeneficiationUseCase
	Statement       *ledger.StatementBuilder
	OrderUC         *orders.UseCase
	FinanceUC       *finance.UseCase
	DepositUC       *deposits.UseCase
	JWTSecret       string
}

// Router registra as rotas da API. Tudo sob /api exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Movimentos de estoque, um grupo por tipo
	colheitas := api.Group("/colheitas")
	harvestHandler := NewHarvestHandler(deps.HarvestUC)
	colheitas.Post("/", harvestHandler.Create)
	colheitas.Get("/:id", harvestHandler.GetByID)
	colheitas.Put("/:id", harvestHandler.Update)
	colheitas.Delete("/:id", harvestHandler.Delete)

	compras := api.Group("/compras")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	compras.Post("/", purchaseHandler.Create)
	compras.Get("/:id", purchaseHandler.GetByID)
	compras.Put("/:id", purchaseHandler.Update)
	compras.Delete("/:id", purchaseHandler.Delete)

	vendas := api.Group("/vendas")
	saleHandler := NewSaleHandler(deps.SaleUC)
	vendas.Post("/", saleHandler.Create)
	vendas.Get("/:id", saleHandler.GetByID)
	vendas.Put("/:id", saleHandler.Update)
	vendas.Delete("/:id", saleHandler.Delete)

	transferencias := api.Group("/transferencias")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transferencias.Post("/", transferHandler.Create)
	transferencias.Get("/:id", transferHandler.GetByID)
	transferencias.Put("/:id", transferHandler.Update)
	transferencias.Delete("/:id", transferHandler.Delete)

	ajustes := api.Group("/ajustes")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	ajustes.Post("/", adjustmentHandler.Create)
	ajustes.Get("/:id", adjustmentHandler.GetByID)
	ajustes.Put("/:id", adjustmentHandler.Update)
	ajustes.Delete("/:id", adjustmentHandler.Delete)

	beneficiamentos := api.Group("/beneficiamentos")
	beneficiationHandler := NewBeneficiationHandler(deps.BeneficiationUC)
	beneficiamentos.Post("/", beneficiationHandler.Create)
	beneficiamentos.Get("/:id", beneficiationHandler.GetByID)
	beneficiamentos.Put("/:id", beneficiationHandler.Update)
	beneficiamentos.Delete("/:id", beneficiationHandler.Delete)

	// Consulta de estoque
	estoque := api.Group("/estoque")
	stockHandler := NewStockHandler(deps.Statement)
	estoque.Get("/extrato", stockHandler.Statement)
	estoque.Get("/saldo", stockHandler.Balance)

	// Pedidos de compra
	pedidos := api.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	pedidos.Post("/", orderHandler.Create)
	pedidos.Get("/:id", orderHandler.GetByID)
	pedidos.Post("/:id/cancelar", orderHandler.Cancel)

	// Títulos financeiros (baixa restrita ao papel financeiro)
	financeiro := api.Group("/financeiro")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeiro.Get("/", financeHandler.List)
	financeiro.Post("/:id/baixa", RequireRole("financeiro"), financeHandler.Settle)
	financeiro.Post("/:id/cancelar", RequireRole("financeiro"), financeHandler.Cancel)

	// Depósitos/fazendas
	depositos := api.Group("/depositos")
	depositHandler := NewDepositHandler(deps.DepositUC)
	depositos.Post("/", depositHandler.Create)
	depositos.Get("/", depositHandler.List)
	depositos.Get("/:id", depositHandler.GetByID)
}
