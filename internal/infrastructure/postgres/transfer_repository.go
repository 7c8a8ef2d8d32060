package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementação sobre PostgreSQL (usável com pool ou tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository constrói o adaptador.
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, tenant_id, date, product, from_location_id, to_location_id, quantity, notes, created_at, created_by`

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(&t.ID, &t.TenantID, &t.Date, &t.Product, &t.FromLocationID,
		&t.ToLocationID, &t.Quantity, &t.Notes, &t.CreatedAt, &t.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste a transferência.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TenantID, t.Date, t.Product, t.FromLocationID, t.ToLocationID,
		t.Quantity, t.Notes, t.CreatedAt, t.CreatedBy)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *TransferRepo) GetByID(tenantID, id string) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE tenant_id = $1 AND id = $2`
	t, err := scanTransfer(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// Update regrava os campos mutáveis.
func (r *TransferRepo) Update(t *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET date = $3, product = $4, from_location_id = $5, to_location_id = $6,
		    quantity = $7, notes = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		t.TenantID, t.ID, t.Date, t.Product, t.FromLocationID, t.ToLocationID,
		t.Quantity, t.Notes)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// Delete remove o registro.
func (r *TransferRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM transfers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

// ListByAccount devolve transferências onde o depósito é origem ou destino.
func (r *TransferRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE tenant_id = $1 AND product = $2 AND (from_location_id = $3 OR to_location_id = $3)
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
