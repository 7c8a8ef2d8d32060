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

var _ repository.StockAccountRepository = (*StockAccountRepo)(nil)

// StockAccountRepo implementação de StockAccountRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockAccountRepo struct {
	q Querier
}

// NewStockAccountRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockAccountRepository(q Querier) *StockAccountRepo {
	return &StockAccountRepo{q: q}
}

// Get devolve a conta; ausente = conta com saldo zero (criação implícita fica
// a cargo de EnsureExists no primeiro movimento).
func (r *StockAccountRepo) Get(tenantID, product, locationID string) (*entity.StockAccount, error) {
	query := `
		SELECT tenant_id, product, location_id, quantity, updated_at
		FROM stock_accounts
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3`
	var s entity.StockAccount
	err := r.q.QueryRow(context.Background(), query, tenantID, product, locationID).Scan(
		&s.TenantID, &s.Product, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockAccount{TenantID: tenantID, Product: product, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock account: %w", err)
	}
	return &s, nil
}

// EnsureExists cria a conta zerada se ausente. O unique (tenant, product,
// location) absorve corridas de criação concorrente.
func (r *StockAccountRepo) EnsureExists(tenantID, product, locationID string) error {
	query := `
		INSERT INTO stock_accounts (tenant_id, product, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (tenant_id, product, location_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return fmt.Errorf("ensure stock account: %w", err)
	}
	return nil
}

// ApplyDelta aplica o incremento/decremento em um único UPDATE atômico.
// O CHECK (quantity >= 0) do schema rejeita saldo negativo; a violação volta
// como domain.ErrInsufficientStock.
func (r *StockAccountRepo) ApplyDelta(tenantID, product, locationID string, delta decimal.Decimal) error {
	query := `
		UPDATE stock_accounts
		SET quantity = quantity + $4, updated_at = now()
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3`
	tag, err := r.q.Exec(context.Background(), query, tenantID, product, locationID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("apply stock delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant devolve todas as contas do tenant, ordenadas por produto e depósito.
func (r *StockAccountRepo) ListByTenant(tenantID string) ([]*entity.StockAccount, error) {
	query := `
		SELECT tenant_id, product, location_id, quantity, updated_at
		FROM stock_accounts
		WHERE tenant_id = $1
		ORDER BY product, location_id`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list stock accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAccount
	for rows.Next() {
		var s entity.StockAccount
		if err := rows.Scan(&s.TenantID, &s.Product, &s.LocationID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock account: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
