package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

var _ repository.HarvestRepository = (*HarvestRepo)(nil)

// HarvestRepo implementação sobre PostgreSQL (usável com pool ou tx).
type HarvestRepo struct {
	q Querier
}

// NewHarvestRepository constrói o adaptador.
func NewHarvestRepository(q Querier) *HarvestRepo {
	return &HarvestRepo{q: q}
}

const harvestColumns = `id, tenant_id, date, product, plot, location_id, gross_weight, net_weight, document, created_at, created_by`

func scanHarvest(row pgx.Row) (*entity.Harvest, error) {
	var h entity.Harvest
	err := row.Scan(&h.ID, &h.TenantID, &h.Date, &h.Product, &h.Plot, &h.LocationID,
		&h.GrossWeight, &h.NetWeight, &h.Document, &h.CreatedAt, &h.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create persiste a colheita.
func (r *HarvestRepo) Create(h *entity.Harvest) error {
	query := `
		INSERT INTO harvests (` + harvestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.TenantID, h.Date, h.Product, h.Plot, h.LocationID,
		h.GrossWeight, h.NetWeight, h.Document, h.CreatedAt, h.CreatedBy)
	if err != nil {
		return fmt.Errorf("create harvest: %w", err)
	}
	return nil
}

// GetByID busca escopada por tenant; outro tenant = nil.
func (r *HarvestRepo) GetByID(tenantID, id string) (*entity.Harvest, error) {
	query := `SELECT ` + harvestColumns + ` FROM harvests WHERE tenant_id = $1 AND id = $2`
	h, err := scanHarvest(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get harvest: %w", err)
	}
	return h, nil
}

// Update regrava os campos mutáveis.
func (r *HarvestRepo) Update(h *entity.Harvest) error {
	query := `
		UPDATE harvests
		SET date = $3, product = $4, plot = $5, location_id = $6,
		    gross_weight = $7, net_weight = $8, document = $9
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		h.TenantID, h.ID, h.Date, h.Product, h.Plot, h.LocationID,
		h.GrossWeight, h.NetWeight, h.Document)
	if err != nil {
		return fmt.Errorf("update harvest: %w", err)
	}
	return nil
}

// Delete remove o registro (o estorno de saldo é responsabilidade do orquestrador).
func (r *HarvestRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM harvests WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete harvest: %w", err)
	}
	return nil
}

// ListByAccount lista colheitas da tripla (tenant, produto, depósito) para o extrato.
func (r *HarvestRepo) ListByAccount(tenantID, product, locationID string) ([]*entity.Harvest, error) {
	query := `
		SELECT ` + harvestColumns + `
		FROM harvests
		WHERE tenant_id = $1 AND product = $2 AND location_id = $3
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, product, locationID)
	if err != nil {
		return nil, fmt.Errorf("list harvests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Harvest
	for rows.Next() {
		h, err := scanHarvest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan harvest: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
