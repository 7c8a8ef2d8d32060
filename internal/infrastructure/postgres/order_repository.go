package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação sobre PostgreSQL (usável com pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create insere o pedido e os itens na mesma chamada (mesma tx quando atado a uma).
func (r *OrderRepo) Create(o *entity.Order, items []*entity.OrderItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, tenant_id, number, counterparty, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, o.ID, o.TenantID, o.Number, o.Counterparty, o.Date, o.Status, o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, product, ordered_quantity, fulfilled_quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, itemQuery, it.ID, it.OrderID, it.Product,
			it.OrderedQuantity, it.FulfilledQuantity, it.UnitPrice)
		if err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *OrderRepo) GetByID(tenantID, id string) (*entity.Order, error) {
	query := `
		SELECT id, tenant_id, number, counterparty, date, status, created_at
		FROM orders
		WHERE tenant_id = $1 AND id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&o.ID, &o.TenantID, &o.Number, &o.Counterparty, &o.Date, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItem devolve o item com verificação de tenant via join no pedido.
func (r *OrderRepo) GetItem(tenantID, itemID string) (*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product, i.ordered_quantity, i.fulfilled_quantity, i.unit_price
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.tenant_id = $1 AND i.id = $2`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, tenantID, itemID).Scan(
		&it.ID, &it.OrderID, &it.Product, &it.OrderedQuantity, &it.FulfilledQuantity, &it.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// ListItems devolve os itens do pedido na ordem de inserção.
func (r *OrderRepo) ListItems(tenantID, orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product, i.ordered_quantity, i.fulfilled_quantity, i.unit_price
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.tenant_id = $1 AND i.order_id = $2
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Product, &it.OrderedQuantity, &it.FulfilledQuantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ApplyFulfillmentDelta soma delta à quantidade atendida em um único UPDATE
// atômico. O CHECK (fulfilled entre 0 e ordered) rejeita a saída do intervalo;
// a violação volta como domain.ErrOrderExceeded.
func (r *OrderRepo) ApplyFulfillmentDelta(tenantID, itemID string, delta decimal.Decimal) error {
	query := `
		UPDATE order_items i
		SET fulfilled_quantity = i.fulfilled_quantity + $3
		FROM orders o
		WHERE o.id = i.order_id AND o.tenant_id = $1 AND i.id = $2`
	tag, err := r.q.Exec(context.Background(), query, tenantID, itemID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrOrderExceeded
		}
		return fmt.Errorf("apply fulfillment delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus grava o status agregado do pedido.
func (r *OrderRepo) UpdateStatus(tenantID, orderID, status string) error {
	query := `UPDATE orders SET status = $3 WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, tenantID, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
