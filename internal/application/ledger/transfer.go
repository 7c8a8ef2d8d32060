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

// TransferUseCase move produto entre depósitos no mesmo passo atômico:
// débito na origem e crédito no destino. Auto-transferência é rejeitada antes
// de qualquer escrita.
type TransferUseCase struct {
	orch   *Orchestrator
	reader Repos
}

// NewTransferUseCase constrói o caso de uso.
func NewTransferUseCase(orch *Orchestrator, reader Repos) *TransferUseCase {
	return &TransferUseCase{orch: orch, reader: reader}
}

func transferFromRequest(tenantID, userID string, in dto.TransferRequest) (*entity.Transfer, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrSameLocation
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Transfer{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Date:           date,
		Product:        in.Product,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}, nil
}

func (uc *TransferUseCase) checkDeposits(tenantID string, t *entity.Transfer) error {
	if err := checkDeposit(uc.reader.Deposits, tenantID, t.FromLocationID); err != nil {
		return err
	}
	return checkDeposit(uc.reader.Deposits, tenantID, t.ToLocationID)
}

// Create debita a origem e credita o destino.
func (uc *TransferUseCase) Create(ctx context.Context, tenantID, userID string, in dto.TransferRequest) (*entity.Transfer, error) {
	t, err := transferFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkDeposits(tenantID, t); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		return &Plan{
			TenantID: tenantID,
			Deltas: []StockDelta{
				{Product: t.Product, LocationID: t.FromLocationID, Delta: t.Quantity.Neg()},
				{Product: t.Product, LocationID: t.ToLocationID, Delta: t.Quantity},
			},
			Record: func(r Repos) error { return r.Transfers.Create(t) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update estorna integralmente o par antigo (credita a origem de volta, debita
// o destino) e reaplica o novo par; se alguma conta ficar negativa, tudo aborta.
func (uc *TransferUseCase) Update(ctx context.Context, tenantID, id string, in dto.TransferRequest) (*entity.Transfer, error) {
	upd, err := transferFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkDeposits(tenantID, upd); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Transfers.GetByID(tenantID, id)
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
				{Product: old.Product, LocationID: old.FromLocationID, Delta: old.Quantity},       // estorno origem
				{Product: old.Product, LocationID: old.ToLocationID, Delta: old.Quantity.Neg()},   // estorno destino
				{Product: upd.Product, LocationID: upd.FromLocationID, Delta: upd.Quantity.Neg()}, // novo débito
				{Product: upd.Product, LocationID: upd.ToLocationID, Delta: upd.Quantity},         // novo crédito
			},
			Record: func(r Repos) error { return r.Transfers.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete desfaz o par: credita a origem e debita o destino; falha se o destino
// já consumiu a quantidade.
func (uc *TransferUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		t, err := r.Transfers.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID: tenantID,
			Deltas: []StockDelta{
				{Product: t.Product, LocationID: t.FromLocationID, Delta: t.Quantity},
				{Product: t.Product, LocationID: t.ToLocationID, Delta: t.Quantity.Neg()},
			},
			Record: func(r Repos) error { return r.Transfers.Delete(tenantID, t.ID) },
		}, nil
	})
}

// Get devolve a transferência.
func (uc *TransferUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Transfer, error) {
	t, err := uc.reader.Transfers.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}
