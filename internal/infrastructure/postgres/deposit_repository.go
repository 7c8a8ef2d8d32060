package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.DepositRepository = (*DepositRepo)(nil)

// DepositRepo implementação sobre PostgreSQL (usável com pool ou tx).
type DepositRepo struct {
	q Querier
}

// NewDepositRepository constrói o adaptador.
func NewDepositRepository(q Querier) *DepositRepo {
	return &DepositRepo{q: q}
}

// Create persiste o depósito/fazenda.
func (r *DepositRepo) Create(d *entity.Deposit) error {
	query := `
		INSERT INTO deposits (id, tenant_id, name, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.TenantID, d.Name, d.Kind, d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create deposit: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *DepositRepo) GetByID(tenantID, id string) (*entity.Deposit, error) {
	query := `SELECT id, tenant_id, name, kind, created_at FROM deposits WHERE tenant_id = $1 AND id = $2`
	var d entity.Deposit
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&d.ID, &d.TenantID, &d.Name, &d.Kind, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposit: %w", err)
	}
	return &d, nil
}

// List devolve os depósitos do tenant ordenados por nome.
func (r *DepositRepo) List(tenantID string) ([]*entity.Deposit, error) {
	query := `SELECT id, tenant_id, name, kind, created_at FROM deposits WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deposit
	for rows.Next() {
		var d entity.Deposit
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Name, &d.Kind, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
