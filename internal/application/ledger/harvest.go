package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// HarvestUseCase registra, edita e exclui colheitas. O peso líquido credita a
// conta de estoque; colheita não gera título financeiro.
type HarvestUseCase struct {
	orch   *Orchestrator
	reader Repos
}

// NewHarvestUseCase constrói o caso de uso.
func NewHarvestUseCase(orch *Orchestrator, reader Repos) *HarvestUseCase {
	return &HarvestUseCase{orch: orch, reader: reader}
}

func harvestFromRequest(tenantID, userID string, in dto.HarvestRequest) (*entity.Harvest, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.NetWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !in.GrossWeight.IsZero() && in.GrossWeight.LessThan(in.NetWeight) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Harvest{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Date:        date,
		Product:     in.Product,
		Plot:        in.Plot,
		LocationID:  in.LocationID,
		GrossWeight: in.GrossWeight,
		NetWeight:   in.NetWeight,
		Document:    in.Document,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	}, nil
}

// Create credita o peso líquido no depósito.
func (uc *HarvestUseCase) Create(ctx context.Context, tenantID, userID string, in dto.HarvestRequest) (*entity.Harvest, error) {
	h, err := harvestFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, h.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: h.Product, LocationID: h.LocationID, Delta: h.NetWeight}},
			Record:   func(r Repos) error { return r.Harvests.Create(h) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Update estorna o peso antigo e credita o novo (delta líquido na mesma conta).
func (uc *HarvestUseCase) Update(ctx context.Context, tenantID, id string, in dto.HarvestRequest) (*entity.Harvest, error) {
	upd, err := harvestFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, upd.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Harvests.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if old == nil {
			return nil, domain.ErrNotFound
		}
		upd.ID = old.ID
		upd.CreatedAt = old.CreatedAt
		upd.CreatedBy = old.CreatedBy
		return &Plan{
			TenantID: tenantID,
			Deltas: []StockDelta{
				{Product: old.Product, LocationID: old.LocationID, Delta: old.NetWeight.Neg()},
				{Product: upd.Product, LocationID: upd.LocationID, Delta: upd.NetWeight},
			},
			Record: func(r Repos) error { return r.Harvests.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete estorna o crédito; falha se o peso já foi consumido por saídas.
func (uc *HarvestUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		h, err := r.Harvests.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: h.Product, LocationID: h.LocationID, Delta: h.NetWeight.Neg()}},
			Record:   func(r Repos) error { return r.Harvests.Delete(tenantID, h.ID) },
		}, nil
	})
}

// Get devolve a colheita.
func (uc *HarvestUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Harvest, error) {
	h, err := uc.reader.Harvests.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	return h, nil
}
