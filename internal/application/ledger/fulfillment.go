package ledger

import (
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// applyFulfillment ajusta a quantidade atendida do item e recalcula o status
// agregado do pedido. O CHECK no banco garante 0 <= atendido <= pedido; a
// violação chega como domain.ErrOrderExceeded e aborta a transação.
func applyFulfillment(r Repos, tenantID string, f FulfillmentDelta) error {
	item, err := r.Orders.GetItem(tenantID, f.OrderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	order, err := r.Orders.GetByID(tenantID, item.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	// Pedido cancelado não recebe novas baixas; estornos (delta negativo) passam.
	if order.Status == entity.OrderCanceled && f.Delta.IsPositive() {
		return domain.ErrOrderCanceled
	}
	if err := r.Orders.ApplyFulfillmentDelta(tenantID, f.OrderItemID, f.Delta); err != nil {
		return err
	}
	return RecalculateOrderStatus(r, tenantID, item.OrderID)
}

// RecalculateOrderStatus relê todos os itens e deriva o status do pedido.
// CANCELADO é terminal e nunca é sobrescrito pela reconciliação.
func RecalculateOrderStatus(r Repos, tenantID, orderID string) error {
	order, err := r.Orders.GetByID(tenantID, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.OrderCanceled {
		return nil
	}
	items, err := r.Orders.ListItems(tenantID, orderID)
	if err != nil {
		return err
	}
	status := entity.DeriveOrderStatus(items)
	if status == order.Status {
		return nil
	}
	return r.Orders.UpdateStatus(tenantID, orderID, status)
}
