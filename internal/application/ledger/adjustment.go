package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// AdjustmentUseCase aplica correções manuais de saldo com quantidade assinada.
// A exclusão estorna o delta e é recusada se deixaria a conta negativa
// (protege contra saídas que já consumiram a quantidade ajustada).
type AdjustmentUseCase struct {
	orch   *Orchestrator
	reader Repos
}

// NewAdjustmentUseCase constrói o caso de uso.
func NewAdjustmentUseCase(orch *Orchestrator, reader Repos) *AdjustmentUseCase {
	return &AdjustmentUseCase{orch: orch, reader: reader}
}

func adjustmentFromRequest(tenantID, userID string, in dto.AdjustmentRequest) (*entity.Adjustment, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Adjustment{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Date:       date,
		Product:    in.Product,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		CreatedAt:  time.Now(),
		CreatedBy:  userID,
	}, nil
}

// Create aplica o delta assinado direto na conta.
func (uc *AdjustmentUseCase) Create(ctx context.Context, tenantID, userID string, in dto.AdjustmentRequest) (*entity.Adjustment, error) {
	a, err := adjustmentFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, a.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: a.Product, LocationID: a.LocationID, Delta: a.Quantity}},
			Record:   func(r Repos) error { return r.Adjustments.Create(a) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update estorna o delta antigo e aplica o novo.
func (uc *AdjustmentUseCase) Update(ctx context.Context, tenantID, id string, in dto.AdjustmentRequest) (*entity.Adjustment, error) {
	upd, err := adjustmentFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, upd.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Adjustments.GetByID(tenantID, id)
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
				{Product: old.Product, LocationID: old.LocationID, Delta: old.Quantity.Neg()},
				{Product: upd.Product, LocationID: upd.LocationID, Delta: upd.Quantity},
			},
			Record: func(r Repos) error { return r.Adjustments.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete estorna o delta; a validação de não-negatividade da conta acontece
// no próprio estorno.
func (uc *AdjustmentUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		a, err := r.Adjustments.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: a.Product, LocationID: a.LocationID, Delta: a.Quantity.Neg()}},
			Record:   func(r Repos) error { return r.Adjustments.Delete(tenantID, a.ID) },
		}, nil
	})
}

// Get devolve o ajuste.
func (uc *AdjustmentUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Adjustment, error) {
	a, err := uc.reader.Adjustments.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
