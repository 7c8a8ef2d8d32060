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

// BeneficiationUseCase registra entradas de beneficiamento: o produto
// resultante credita o destino; a matéria-prima vem de um pool distinto e não
// é debitada pelo motor (crédito puro para fins de extrato).
type BeneficiationUseCase struct {
	orch   *Orchestrator
	reader Repos
}

// NewBeneficiationUseCase constrói o caso de uso.
func NewBeneficiationUseCase(orch *Orchestrator, reader Repos) *BeneficiationUseCase {
	return &BeneficiationUseCase{orch: orch, reader: reader}
}

func beneficiationFromRequest(tenantID, userID string, in dto.BeneficiationRequest) (*entity.Beneficiation, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Beneficiation{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Date:          date,
		SourceProduct: in.SourceProduct,
		Product:       in.Product,
		LocationID:    in.LocationID,
		Quantity:      in.Quantity,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}, nil
}

// Create credita o produto beneficiado no destino.
func (uc *BeneficiationUseCase) Create(ctx context.Context, tenantID, userID string, in dto.BeneficiationRequest) (*entity.Beneficiation, error) {
	b, err := beneficiationFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, b.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: b.Product, LocationID: b.LocationID, Delta: b.Quantity}},
			Record:   func(r Repos) error { return r.Beneficiations.Create(b) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update estorna o crédito antigo e aplica o novo.
func (uc *BeneficiationUseCase) Update(ctx context.Context, tenantID, id string, in dto.BeneficiationRequest) (*entity.Beneficiation, error) {
	upd, err := beneficiationFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, upd.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Beneficiations.GetByID(tenantID, id)
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
			Record: func(r Repos) error { return r.Beneficiations.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete estorna o crédito; falha se a quantidade já foi consumida.
func (uc *BeneficiationUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		b, err := r.Beneficiations.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID: tenantID,
			Deltas:   []StockDelta{{Product: b.Product, LocationID: b.LocationID, Delta: b.Quantity.Neg()}},
			Record:   func(r Repos) error { return r.Beneficiations.Delete(tenantID, b.ID) },
		}, nil
	})
}

// Get devolve o beneficiamento.
func (uc *BeneficiationUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Beneficiation, error) {
	b, err := uc.reader.Beneficiations.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
