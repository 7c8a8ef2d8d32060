package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.BeneficiationRepository = (*BeneficiationRepo)(nil)

// BeneficiationRepo implementação sobre PostgreSQL (usável com pool ou tx).
type BeneficiationRepo struct {
	q Querier
}

// NewBeneficiationRepository constrói o adaptador.
func NewBeneficiationRepository(q Querier) *BeneficiationRepo {
	return &BeneficiationRepo{q: q}
}

const beneficiationColumns = `id, tenant_id, date, source_product, product, location_id, quantity, notes, created_at, created_by`

func scanBeneficiation(row pgx.Row) (*entity.Beneficiation, error) {
	var b entity.Beneficiation
	err := row.Scan(&b.ID, &b.TenantID, &b.Date, &b.SourceProduct, &b.Product,
		&b.LocationID, &b.Quantity, &b.Notes, &b.CreatedAt, &b.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste o beneficiamento.
func (r *BeneficiationRepo) Create(b *entity.Beneficiation) error {
	query := `
		INSERT INTO beneficiations (` + beneficiationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.TenantID, b.Date, b.SourceProduct, b.Product, b.LocationID,
		b.Quantity, b.Notes, b.CreatedAt, b.CreatedBy)
	if err != nil {
		return fmt.Errorf("create beneficiation: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *BeneficiationRepo) GetByID(tenantID, id string) (*entity.Beneficiation, error) {
	query := `SELECT ` + beneficiationColumns + ` FROM beneficiations WHERE tenant_id = $1 AND id = $2`
	b, err := scanBeneficiation(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beneficiation: %w", err)
	}
	return b, nil
}

// Update regrava os campos mutáveis.
func (r *BeneficiationRepo) Update(b *entity.Beneficiation) error {
	query := `
		UPDATE beneficiations
		SET date = $3, source_product = $4, product = $5, location_id = $6,
		    quantity = $7, notes = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		b.TenantID, b.ID, b.Date, b.SourceProduct, b.Product, b.LocationID,
		b.Quantity, b.Notes)
	if err != nil {
		return fmt.Errorf("update beneficiation: %w", err)
	}
	return nil
}

// Delete remove o registro.
func (r *BeneficiationRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM beneficiations WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete beneficiation: %w", err)
	}
	return nil
}

// ListByAccount lista beneficiamentos da tripla (tenant, produto, depósito).
// Filtra pelo produto resultante, que é o que afeta o saldo.
func (r *BeneficiationRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Beneficiation, error) {
	query := `
		SELECT ` + beneficiationColumns + `
		FROM beneficiations
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list beneficiations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beneficiation
	for rows.Next() {
		b, err := scanBeneficiation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beneficiation: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
