package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

const testTenant = "t-1"

type fakeOrders struct {
	orders map[string]entity.Order
	items  map[string]entity.OrderItem
}

func (f *fakeOrders) Create(o *entity.Order, items []*entity.OrderItem) error {
	f.orders[o.ID] = *o
	for _, it := range items {
		f.items[it.ID] = *it
	}
	return nil
}
func (f *fakeOrders) GetByID(tenantID, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return &o, nil
}
func (f *fakeOrders) GetItem(tenantID, itemID string) (*entity.OrderItem, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}
func (f *fakeOrders) ListItems(tenantID, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range f.items {
		if it.OrderID == orderID {
			it := it
			out = append(out, &it)
		}
	}
	return out, nil
}
func (f *fakeOrders) ApplyFulfillmentDelta(tenantID, itemID string, delta decimal.Decimal) error {
	return nil
}
func (f *fakeOrders) UpdateStatus(tenantID, orderID, status string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	f.orders[orderID] = o
	return nil
}

type fakeTx struct{ repos ledger.Repos }

func (f *fakeTx) Run(ctx context.Context, fn func(r ledger.Repos) error) error {
	return fn(f.repos)
}

func newOrdersEnv() (*UseCase, *fakeOrders) {
	repo := &fakeOrders{orders: map[string]entity.Order{}, items: map[string]entity.OrderItem{}}
	repos := ledger.Repos{Orders: repo}
	return NewUseCase(&fakeTx{repos: repos}, repos), repo
}

func TestCreatePedidoNasceAbertoComItensZerados(t *testing.T) {
	uc, _ := newOrdersEnv()

	o, items, err := uc.Create(context.Background(), testTenant, dto.CreateOrderRequest{
		Number: "PED-001", Counterparty: "Fornecedor X", Date: "2026-03-01",
		Items: []dto.OrderItemRequest{
			{Product: "MILHO", Quantity: decimal.NewFromInt(1000), UnitPrice: decimal.NewFromInt(50)},
			{Product: "SOJA", Quantity: decimal.NewFromInt(200), UnitPrice: decimal.NewFromInt(120)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderOpen, o.Status)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.FulfilledQuantity.IsZero())
		assert.Equal(t, o.ID, it.OrderID)
	}
}

func TestCreatePedidoValidaItens(t *testing.T) {
	uc, _ := newOrdersEnv()

	_, _, err := uc.Create(context.Background(), testTenant, dto.CreateOrderRequest{
		Number: "PED-002", Counterparty: "Fornecedor X", Date: "2026-03-01",
		Items: []dto.OrderItemRequest{
			{Product: "MILHO", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item com quantidade zero é inválido")

	_, _, err = uc.Create(context.Background(), testTenant, dto.CreateOrderRequest{
		Number: "PED-003", Counterparty: "Fornecedor X", Date: "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido sem itens é inválido")
}

func TestCancelEhTerminalEIdempotente(t *testing.T) {
	uc, repo := newOrdersEnv()

	o, _, err := uc.Create(context.Background(), testTenant, dto.CreateOrderRequest{
		Number: "PED-001", Counterparty: "Fornecedor X", Date: "2026-03-01",
		Items: []dto.OrderItemRequest{
			{Product: "MILHO", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(context.Background(), testTenant, o.ID))
	assert.Equal(t, entity.OrderCanceled, repo.orders[o.ID].Status)

	// Repetido: sem erro, sem mudança.
	require.NoError(t, uc.Cancel(context.Background(), testTenant, o.ID))
	assert.Equal(t, entity.OrderCanceled, repo.orders[o.ID].Status)

	err = uc.Cancel(context.Background(), testTenant, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPedidoDeOutroTenant(t *testing.T) {
	uc, _ := newOrdersEnv()

	o, _, err := uc.Create(context.Background(), testTenant, dto.CreateOrderRequest{
		Number: "PED-001", Counterparty: "Fornecedor X", Date: "2026-03-01",
		Items: []dto.OrderItemRequest{
			{Product: "MILHO", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	_, _, err = uc.Get(context.Background(), "outro-tenant", o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
