package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação sobre PostgreSQL (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, tenant_id, date, product, location_id, quantity, unit_price,
	counterparty, invoice_number, payment_terms, due_date, created_at, created_by`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.TenantID, &s.Date, &s.Product, &s.LocationID, &s.Quantity,
		&s.UnitPrice, &s.Counterparty, &s.InvoiceNumber, &s.PaymentTerms, &s.DueDate,
		&s.CreatedAt, &s.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste a venda.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TenantID, s.Date, s.Product, s.LocationID, s.Quantity, s.UnitPrice,
		s.Counterparty, s.InvoiceNumber, s.PaymentTerms, s.DueDate, s.CreatedAt, s.CreatedBy)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *SaleRepo) GetByID(tenantID, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE tenant_id = $1 AND id = $2`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update regrava os campos mutáveis.
func (r *SaleRepo) Update(s *entity.Sale) error {
	query := `
		UPDATE sales
		SET date = $3, product = $4, location_id = $5, quantity = $6, unit_price = $7,
		    counterparty = $8, invoice_number = $9, payment_terms = $10, due_date = $11
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		s.TenantID, s.ID, s.Date, s.Product, s.LocationID, s.Quantity, s.UnitPrice,
		s.Counterparty, s.InvoiceNumber, s.PaymentTerms, s.DueDate)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete remove o registro.
func (r *SaleRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sales WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// ListByAccount lista vendas da tripla (tenant, produto, depósito) para o extrato.
func (r *SaleRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
