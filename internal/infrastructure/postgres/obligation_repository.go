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

var _ repository.ObligationRepository = (*ObligationRepo)(nil)

// ObligationRepo implementação sobre PostgreSQL (usável com pool ou tx).
type ObligationRepo struct {
	q Querier
}

// NewObligationRepository constrói o adaptador.
func NewObligationRepository(q Querier) *ObligationRepo {
	return &ObligationRepo{q: q}
}

const obligationColumns = `id, tenant_id, kind, movement_kind, movement_id, description,
	counterparty, amount, due_date, status, paid_at, created_at, updated_at`

func scanObligation(row pgx.Row) (*entity.FinancialObligation, error) {
	var o entity.FinancialObligation
	err := row.Scan(&o.ID, &o.TenantID, &o.Kind, &o.MovementKind, &o.MovementID,
		&o.Description, &o.Counterparty, &o.Amount, &o.DueDate, &o.Status, &o.PaidAt,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste o título. O unique (movement_kind, movement_id) garante o
// vínculo 1:1 com o movimento de origem; violação volta como ErrDuplicate.
func (r *ObligationRepo) Create(o *entity.FinancialObligation) error {
	query := `
		INSERT INTO financial_obligations (` + obligationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.TenantID, o.Kind, o.MovementKind, o.MovementID, o.Description,
		o.Counterparty, o.Amount, o.DueDate, o.Status, o.PaidAt, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create obligation: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *ObligationRepo) GetByID(tenantID, id string) (*entity.FinancialObligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM financial_obligations WHERE tenant_id = $1 AND id = $2`
	o, err := scanObligation(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obligation: %w", err)
	}
	return o, nil
}

// GetByMovement devolve o título vinculado ao movimento, ou nil se não houver.
func (r *ObligationRepo) GetByMovement(tenantID string, kind entity.MovementKind, movementID string) (*entity.FinancialObligation, error) {
	query := `
		SELECT ` + obligationColumns + `
		FROM financial_obligations
		WHERE tenant_id = $1 AND movement_kind = $2 AND movement_id = $3`
	o, err := scanObligation(r.q.QueryRow(context.Background(), query, tenantID, kind, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obligation by movement: %w", err)
	}
	return o, nil
}

// Update regrava os campos mutáveis do título.
func (r *ObligationRepo) Update(o *entity.FinancialObligation) error {
	query := `
		UPDATE financial_obligations
		SET description = $3, counterparty = $4, amount = $5, due_date = $6,
		    status = $7, paid_at = $8, updated_at = now()
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		o.TenantID, o.ID, o.Description, o.Counterparty, o.Amount, o.DueDate,
		o.Status, o.PaidAt)
	if err != nil {
		return fmt.Errorf("update obligation: %w", err)
	}
	return nil
}

// DeleteByMovement remove o título vinculado ao movimento, se houver.
func (r *ObligationRepo) DeleteByMovement(tenantID string, kind entity.MovementKind, movementID string) error {
	query := `
		DELETE FROM financial_obligations
		WHERE tenant_id = $1 AND movement_kind = $2 AND movement_id = $3`
	_, err := r.q.Exec(context.Background(), query, tenantID, kind, movementID)
	if err != nil {
		return fmt.Errorf("delete obligation by movement: %w", err)
	}
	return nil
}

// List filtra por tipo (PAGAR/RECEBER) e status persistido; strings vazias não filtram.
func (r *ObligationRepo) List(tenantID, kind, status string) ([]*entity.FinancialObligation, error) {
	query := `
		SELECT ` + obligationColumns + `
		FROM financial_obligations
		WHERE tenant_id = $1
		  AND ($2 = '' OR kind = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY due_date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, kind, status)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialObligation
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan obligation: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
