package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ambiente de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTenant   = "00000000-0000-0000-0000-00000000000a"
	depositoSede = "11111111-1111-4111-8111-111111111111"
	depositoSul  = "22222222-2222-4222-8222-222222222222"
)

type testEnv struct {
	store *memStore
	orch  *Orchestrator
	repos Repos
}

// newTestEnv monta o motor sobre os dublês em memória, com dois depósitos do
// tenant já cadastrados.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	repos := newMemRepos(store)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	orch := NewOrchestrator(&memTxRunner{s: store}, log)

	for _, d := range []entity.Deposit{
		{ID: depositoSede, TenantID: testTenant, Name: "Sede", Kind: entity.DepositKindWarehouse},
		{ID: depositoSul, TenantID: testTenant, Name: "Fazenda Sul", Kind: entity.DepositKindFarm},
	} {
		d := d
		require.NoError(t, repos.Deposits.Create(&d))
	}
	return &testEnv{store: store, orch: orch, repos: repos}
}

func (e *testEnv) balance(t *testing.T, product, locationID string) decimal.Decimal {
	t.Helper()
	acc, err := e.repos.Stock.Get(testTenant, product, locationID)
	require.NoError(t, err)
	return acc.Quantity
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Colheita e venda: ciclo básico de crédito/débito
// ──────────────────────────────────────────────────────────────────────────────

func TestColheitaCreditaPesoLiquido(t *testing.T) {
	env := newTestEnv(t)
	uc := NewHarvestUseCase(env.orch, env.repos)

	h, err := uc.Create(context.Background(), testTenant, "user-1", dto.HarvestRequest{
		Date:        "2026-03-10",
		Product:     "SOJA",
		Plot:        "Talhão 3",
		LocationID:  depositoSede,
		GrossWeight: dec("1050"),
		NetWeight:   dec("1000"),
		Document:    "ROM-001",
	})
	require.NoError(t, err)
	require.NotNil(t, h)

	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("1000")),
		"o peso líquido (não o bruto) deve creditar a conta")
}

func TestVendaDebitaEExclusaoDevolve(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede, NetWeight: dec("1000"),
	})
	require.NoError(t, err)

	s, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("400"), UnitPrice: dec("120"), Counterparty: "Cooperativa",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("600")))

	require.NoError(t, saleUC.Delete(context.Background(), testTenant, s.ID))
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("1000")),
		"a exclusão da venda deve devolver a quantidade ao depósito")

	got, _, err := saleUC.Get(context.Background(), testTenant, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestVendaSemSaldoAbortaTudo(t *testing.T) {
	env := newTestEnv(t)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("50"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nenhum efeito parcial: nem registro de venda, nem débito.
	assert.Empty(t, env.store.sales, "a venda não pode ficar gravada após o abort")
	assert.True(t, env.balance(t, "SOJA", depositoSede).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Edição: delta líquido (novo − antigo)
// ──────────────────────────────────────────────────────────────────────────────

func TestEdicaoVendaAplicaDeltaLiquido(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede, NetWeight: dec("500"),
	})
	require.NoError(t, err)

	s, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("200"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)

	// 200 -> 350: débito líquido de mais 150.
	_, err = saleUC.Update(context.Background(), testTenant, s.ID, dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("350"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("150")))

	// 350 -> 600 excede o saldo restante (150 disponíveis + 350 estornados = 500 < 600).
	_, err = saleUC.Update(context.Background(), testTenant, s.ID, dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("600"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("150")),
		"a edição rejeitada não pode deixar efeito parcial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferência
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferenciaMoveEntreDepositos(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	transferUC := NewTransferUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "MILHO", LocationID: depositoSede, NetWeight: dec("800"),
	})
	require.NoError(t, err)

	tr, err := transferUC.Create(context.Background(), testTenant, "u", dto.TransferRequest{
		Date: "2026-03-11", Product: "MILHO",
		FromLocationID: depositoSede, ToLocationID: depositoSul, Quantity: dec("200"),
	})
	require.NoError(t, err)
	assert.True(t, env.balance(t, "MILHO", depositoSede).Equal(dec("600")))
	assert.True(t, env.balance(t, "MILHO", depositoSul).Equal(dec("200")))

	// Edição 200 -> 300: estorno integral do par + reaplicação.
	_, err = transferUC.Update(context.Background(), testTenant, tr.ID, dto.TransferRequest{
		Date: "2026-03-11", Product: "MILHO",
		FromLocationID: depositoSede, ToLocationID: depositoSul, Quantity: dec("300"),
	})
	require.NoError(t, err)
	assert.True(t, env.balance(t, "MILHO", depositoSede).Equal(dec("500")))
	assert.True(t, env.balance(t, "MILHO", depositoSul).Equal(dec("300")))

	// Exclusão desfaz o par.
	require.NoError(t, transferUC.Delete(context.Background(), testTenant, tr.ID))
	assert.True(t, env.balance(t, "MILHO", depositoSede).Equal(dec("800")))
	assert.True(t, env.balance(t, "MILHO", depositoSul).IsZero())
}

func TestTransferenciaMesmoDepositoRejeitada(t *testing.T) {
	env := newTestEnv(t)
	transferUC := NewTransferUseCase(env.orch, env.repos)

	_, err := transferUC.Create(context.Background(), testTenant, "u", dto.TransferRequest{
		Date: "2026-03-11", Product: "MILHO",
		FromLocationID: depositoSede, ToLocationID: depositoSede, Quantity: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrSameLocation)
}

func TestExclusaoTransferenciaComDestinoConsumido(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	transferUC := NewTransferUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "MILHO", LocationID: depositoSede, NetWeight: dec("500"),
	})
	require.NoError(t, err)

	tr, err := transferUC.Create(context.Background(), testTenant, "u", dto.TransferRequest{
		Date: "2026-03-11", Product: "MILHO",
		FromLocationID: depositoSede, ToLocationID: depositoSul, Quantity: dec("200"),
	})
	require.NoError(t, err)

	// O destino vende o que recebeu; o estorno da transferência deixaria o
	// destino negativo e deve abortar.
	_, err = saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "MILHO", LocationID: depositoSul,
		Quantity: dec("150"), UnitPrice: dec("80"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)

	err = transferUC.Delete(context.Background(), testTenant, tr.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, env.balance(t, "MILHO", depositoSede).Equal(dec("300")),
		"a origem não pode receber o estorno de uma exclusão abortada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestAjusteAssinadoEExclusao(t *testing.T) {
	env := newTestEnv(t)
	adjUC := NewAdjustmentUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	a, err := adjUC.Create(context.Background(), testTenant, "u", dto.AdjustmentRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("100"), Reason: "inventário inicial",
	})
	require.NoError(t, err)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("100")))

	// Consome 80 do saldo ajustado.
	_, err = saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-11", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("80"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)

	// Excluir o ajuste estornaria -100 com só 20 em conta.
	err = adjUC.Delete(context.Background(), testTenant, a.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("20")))
	assert.Len(t, env.store.adjustments, 1, "o ajuste deve permanecer gravado")
}

func TestAjusteNegativoRespeitaSaldo(t *testing.T) {
	env := newTestEnv(t)
	adjUC := NewAdjustmentUseCase(env.orch, env.repos)

	_, err := adjUC.Create(context.Background(), testTenant, "u", dto.AdjustmentRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("-5"), Reason: "perda",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Beneficiamento
// ──────────────────────────────────────────────────────────────────────────────

func TestBeneficiamentoCreditaProdutoResultante(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBeneficiationUseCase(env.orch, env.repos)

	_, err := uc.Create(context.Background(), testTenant, "u", dto.BeneficiationRequest{
		Date: "2026-04-01", SourceProduct: "CAFE_CRU", Product: "CAFE_BENEFICIADO",
		LocationID: depositoSede, Quantity: dec("300"),
	})
	require.NoError(t, err)

	assert.True(t, env.balance(t, "CAFE_BENEFICIADO", depositoSede).Equal(dec("300")))
	assert.True(t, env.balance(t, "CAFE_CRU", depositoSede).IsZero(),
		"a matéria-prima não é debitada pelo beneficiamento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Título financeiro derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestVendaAPrazoGeraTituloReceber(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede, NetWeight: dec("1000"),
	})
	require.NoError(t, err)

	s, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("100"), UnitPrice: dec("120"), Counterparty: "Cooperativa",
		InvoiceNumber: "NF-55", PaymentTerms: entity.TermsDeferred, DueDate: "2026-04-12",
	})
	require.NoError(t, err)

	ob, err := env.repos.Obligations.GetByMovement(testTenant, entity.KindSale, s.ID)
	require.NoError(t, err)
	require.NotNil(t, ob, "venda a prazo deve gerar título")
	assert.Equal(t, entity.ObligationReceivable, ob.Kind)
	assert.Equal(t, entity.ObligationPending, ob.Status)
	assert.True(t, ob.Amount.Equal(dec("12000")), "valor = quantidade × preço unitário")
	assert.Equal(t, "SOJA - NF NF-55 - Cooperativa", ob.Description)

	// Edição para à vista remove o título pendente.
	_, err = saleUC.Update(context.Background(), testTenant, s.ID, dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("100"), UnitPrice: dec("120"), Counterparty: "Cooperativa",
		PaymentTerms: entity.TermsCash,
	})
	require.NoError(t, err)
	ob, err = env.repos.Obligations.GetByMovement(testTenant, entity.KindSale, s.ID)
	require.NoError(t, err)
	assert.Nil(t, ob, "condição à vista não carrega título")
}

func TestTituloPagoBloqueiaExclusaoDoMovimento(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede, NetWeight: dec("1000"),
	})
	require.NoError(t, err)

	s, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("100"), UnitPrice: dec("120"), Counterparty: "Cooperativa",
		PaymentTerms: entity.TermsDeferred, DueDate: "2026-04-12",
	})
	require.NoError(t, err)

	// Baixa manual do título direto no repositório.
	ob, err := env.repos.Obligations.GetByMovement(testTenant, entity.KindSale, s.ID)
	require.NoError(t, err)
	now := time.Now()
	ob.Status = entity.ObligationPaid
	ob.PaidAt = &now
	require.NoError(t, env.repos.Obligations.Update(ob))

	err = saleUC.Delete(context.Background(), testTenant, s.ID)
	assert.ErrorIs(t, err, domain.ErrObligationPaid)

	// Nada mudou: venda gravada, saldo debitado, título pago.
	assert.Len(t, env.store.sales, 1)
	assert.True(t, env.balance(t, "SOJA", depositoSede).Equal(dec("900")))
	ob, err = env.repos.Obligations.GetByMovement(testTenant, entity.KindSale, s.ID)
	require.NoError(t, err)
	require.NotNil(t, ob)
	assert.Equal(t, entity.ObligationPaid, ob.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compra vinculada a pedido
// ──────────────────────────────────────────────────────────────────────────────

func seedOrder(t *testing.T, env *testEnv, ordered string) (orderID, itemID string) {
	t.Helper()
	order := &entity.Order{
		ID: "33333333-3333-4333-8333-333333333333", TenantID: testTenant,
		Number: "PED-001", Counterparty: "Fornecedor X",
		Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: entity.OrderOpen,
	}
	item := &entity.OrderItem{
		ID: "44444444-4444-4444-8444-444444444444", OrderID: order.ID,
		Product: "MILHO", OrderedQuantity: dec(ordered), UnitPrice: dec("50"),
	}
	require.NoError(t, env.repos.Orders.Create(order, []*entity.OrderItem{item}))
	return order.ID, item.ID
}

func TestCompraVinculadaBaixaPedido(t *testing.T) {
	env := newTestEnv(t)
	uc := NewPurchaseUseCase(env.orch, env.repos)
	orderID, itemID := seedOrder(t, env, "1000")

	_, err := uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-05", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("600"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	require.NoError(t, err)

	order, err := env.repos.Orders.GetByID(testTenant, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPartially, order.Status)

	// 600 atendidos + 500 excederiam os 1000 pedidos: aborta tudo.
	_, err = uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-06", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("500"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	assert.ErrorIs(t, err, domain.ErrOrderExceeded)
	assert.Len(t, env.store.purchases, 1, "a compra rejeitada não pode ficar gravada")
	assert.True(t, env.balance(t, "MILHO", depositoSede).Equal(dec("600")),
		"o crédito de estoque da compra rejeitada deve ser desfeito")

	// 400 fecham o pedido.
	_, err = uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-07", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("400"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	require.NoError(t, err)
	order, err = env.repos.Orders.GetByID(testTenant, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderFulfilled, order.Status)
}

func TestExclusaoCompraEstornaBaixaDoPedido(t *testing.T) {
	env := newTestEnv(t)
	uc := NewPurchaseUseCase(env.orch, env.repos)
	orderID, itemID := seedOrder(t, env, "1000")

	p, err := uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-05", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("600"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), testTenant, p.ID))

	item, err := env.repos.Orders.GetItem(testTenant, itemID)
	require.NoError(t, err)
	assert.True(t, item.FulfilledQuantity.IsZero(), "o atendimento volta a zero")

	order, err := env.repos.Orders.GetByID(testTenant, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderOpen, order.Status)
}

func TestCompraEmPedidoCanceladoRejeitada(t *testing.T) {
	env := newTestEnv(t)
	uc := NewPurchaseUseCase(env.orch, env.repos)
	orderID, itemID := seedOrder(t, env, "1000")
	require.NoError(t, env.repos.Orders.UpdateStatus(testTenant, orderID, entity.OrderCanceled))

	_, err := uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-05", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("100"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	assert.ErrorIs(t, err, domain.ErrOrderCanceled)
	assert.Empty(t, env.store.purchases)
}

func TestExclusaoCompraEmPedidoCanceladoPassa(t *testing.T) {
	env := newTestEnv(t)
	uc := NewPurchaseUseCase(env.orch, env.repos)
	orderID, itemID := seedOrder(t, env, "1000")

	p, err := uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-05", Product: "MILHO", LocationID: depositoSede,
		Quantity: dec("600"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	require.NoError(t, err)
	require.NoError(t, env.repos.Orders.UpdateStatus(testTenant, orderID, entity.OrderCanceled))

	// Estorno (delta negativo) é permitido mesmo com pedido cancelado, e o
	// status terminal não é sobrescrito pela reconciliação.
	require.NoError(t, uc.Delete(context.Background(), testTenant, p.ID))
	order, err := env.repos.Orders.GetByID(testTenant, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCanceled, order.Status)
}

func TestCompraComItemDeOutroProdutoRejeitada(t *testing.T) {
	env := newTestEnv(t)
	uc := NewPurchaseUseCase(env.orch, env.repos)
	_, itemID := seedOrder(t, env, "1000") // item de MILHO

	_, err := uc.Create(context.Background(), testTenant, "u", dto.PurchaseRequest{
		Date: "2026-03-05", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("100"), UnitPrice: dec("50"), Counterparty: "Fornecedor X",
		PaymentTerms: entity.TermsCash, OrderItemID: itemID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações de entrada e isolamento de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestAPrazoSemVencimentoRejeitado(t *testing.T) {
	env := newTestEnv(t)
	saleUC := NewSaleUseCase(env.orch, env.repos)

	_, err := saleUC.Create(context.Background(), testTenant, "u", dto.SaleRequest{
		Date: "2026-03-12", Product: "SOJA", LocationID: depositoSede,
		Quantity: dec("10"), UnitPrice: dec("100"), Counterparty: "Cliente",
		PaymentTerms: entity.TermsDeferred, // sem due_date
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDepositoInexistenteRejeitado(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)

	_, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA",
		LocationID: "99999999-9999-4999-8999-999999999999", NetWeight: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimentoDeOutroTenantInvisivel(t *testing.T) {
	env := newTestEnv(t)
	harvestUC := NewHarvestUseCase(env.orch, env.repos)

	h, err := harvestUC.Create(context.Background(), testTenant, "u", dto.HarvestRequest{
		Date: "2026-03-10", Product: "SOJA", LocationID: depositoSede, NetWeight: dec("10"),
	})
	require.NoError(t, err)

	_, err = harvestUC.Get(context.Background(), "outro-tenant", h.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = harvestUC.Delete(context.Background(), "outro-tenant", h.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
