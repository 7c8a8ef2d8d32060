package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementação sobre PostgreSQL (usável com pool ou tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository constrói o adaptador.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, tenant_id, date, product, location_id, quantity, unit_price,
	counterparty, invoice_number, payment_terms, due_date, order_item_id, created_at, created_by`

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(&p.ID, &p.TenantID, &p.Date, &p.Product, &p.LocationID, &p.Quantity,
		&p.UnitPrice, &p.Counterparty, &p.InvoiceNumber, &p.PaymentTerms, &p.DueDate,
		&p.OrderItemID, &p.CreatedAt, &p.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste a compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Date, p.Product, p.LocationID, p.Quantity, p.UnitPrice,
		p.Counterparty, p.InvoiceNumber, p.PaymentTerms, p.DueDate, p.OrderItemID,
		p.CreatedAt, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *PurchaseRepo) GetByID(tenantID, id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE tenant_id = $1 AND id = $2`
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

// Update regrava os campos mutáveis.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases
		SET date = $3, product = $4, location_id = $5, quantity = $6, unit_price = $7,
		    counterparty = $8, invoice_number = $9, payment_terms = $10, due_date = $11,
		    order_item_id = $12
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.TenantID, p.ID, p.Date, p.Product, p.LocationID, p.Quantity, p.UnitPrice,
		p.Counterparty, p.InvoiceNumber, p.PaymentTerms, p.DueDate, p.OrderItemID)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete remove o registro.
func (r *PurchaseRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchases WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// ListByAccount lista compras da tripla (tenant, produto, depósito) para o extrato.
func (r *PurchaseRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
