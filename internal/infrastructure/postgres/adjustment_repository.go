package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementação sobre PostgreSQL (usável com pool ou tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository constrói o adaptador.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

const adjustmentColumns = `id, tenant_id, date, product, location_id, quantity, reason, created_at, created_by`

func scanAdjustment(row pgx.Row) (*entity.Adjustment, error) {
	var a entity.Adjustment
	err := row.Scan(&a.ID, &a.TenantID, &a.Date, &a.Product, &a.LocationID,
		&a.Quantity, &a.Reason, &a.CreatedAt, &a.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste o ajuste.
func (r *AdjustmentRepo) Create(a *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.TenantID, a.Date, a.Product, a.LocationID, a.Quantity, a.Reason,
		a.CreatedAt, a.CreatedBy)
	if err != nil {
		return fmt.Errorf("create adjustment: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *AdjustmentRepo) GetByID(tenantID, id string) (*entity.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE tenant_id = $1 AND id = $2`
	a, err := scanAdjustment(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return a, nil
}

// Update regrava os campos mutáveis.
func (r *AdjustmentRepo) Update(a *entity.Adjustment) error {
	query := `
		UPDATE adjustments
		SET date = $3, product = $4, location_id = $5, quantity = $6, reason = $7
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		a.TenantID, a.ID, a.Date, a.Product, a.LocationID, a.Quantity, a.Reason)
	if err != nil {
		return fmt.Errorf("update adjustment: %w", err)
	}
	return nil
}

// Delete remove o registro.
func (r *AdjustmentRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM adjustments WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete adjustment: %w", err)
	}
	return nil
}

// ListByAccount lista ajustes da tripla (tenant, produto, depósito) para o extrato.
func (r *AdjustmentRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Adjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
