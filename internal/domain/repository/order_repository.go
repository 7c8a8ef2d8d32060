package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// OrderRepository define o porto de persistência de pedidos e seus itens.
type OrderRepository interface {
	Create(o *entity.Order, items []*entity.OrderItem) error
	GetByID(tenantID, id string) (*entity.Order, error)
	// GetItem devolve o item com verificação de tenant via join no pedido.
	GetItem(tenantID, itemID string) (*entity.OrderItem, error)
	ListItems(tenantID, orderID string) ([]*entity.OrderItem, error)
	// ApplyFulfillmentDelta soma delta à quantidade atendida do item de forma atômica.
	// Retorna domain.ErrOrderExceeded se o resultado sair de [0, ordered_quantity].
	ApplyFulfillmentDelta(tenantID, itemID string, delta decimal.Decimal) error
	UpdateStatus(tenantID, orderID, status string) error
}
