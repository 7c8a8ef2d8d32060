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

// SaleUseCase registra, edita e exclui vendas (saída de estoque) via orquestrador.
// A criação falha com estoque insuficiente; a exclusão é recusada se o título
// a receber vinculado já estiver pago.
type SaleUseCase struct {
	orch   *Orchestrator
	reader Repos // repositórios ligados ao pool, só leitura
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(orch *Orchestrator, reader Repos) *SaleUseCase {
	return &SaleUseCase{orch: orch, reader: reader}
}

func saleFromRequest(tenantID, userID string, in dto.SaleRequest) (*entity.Sale, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	due, err := parseDueDate(in.PaymentTerms, in.DueDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Sale{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Date:          date,
		Product:       in.Product,
		LocationID:    in.LocationID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		Counterparty:  in.Counterparty,
		InvoiceNumber: in.InvoiceNumber,
		PaymentTerms:  in.PaymentTerms,
		DueDate:       due,
		CreatedAt:     now,
		CreatedBy:     userID,
	}, nil
}

// saleFinancial monta a instrução de sincronização do título a receber.
func saleFinancial(s *entity.Sale, remove bool) *FinancialSync {
	return &FinancialSync{
		MovementKind: entity.KindSale,
		MovementID:   s.ID,
		Kind:         entity.ObligationReceivable,
		Remove:       remove,
		Terms:        s.PaymentTerms,
		DueDate:      s.DueDate,
		Amount:       s.Quantity.Mul(s.UnitPrice),
		Counterparty: s.Counterparty,
		Description:  ObligationDescription(s.Product, s.InvoiceNumber, s.Counterparty),
	}
}

// Create debita o depósito e, se a prazo, cria o título a receber.
func (uc *SaleUseCase) Create(ctx context.Context, tenantID, userID string, in dto.SaleRequest) (*entity.Sale, error) {
	s, err := saleFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, s.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		return &Plan{
			TenantID:  tenantID,
			Deltas:    []StockDelta{{Product: s.Product, LocationID: s.LocationID, Delta: s.Quantity.Neg()}},
			Financial: saleFinancial(s, false),
			Record:    func(r Repos) error { return r.Sales.Create(s) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update estorna o efeito antigo e aplica o novo; na mesma conta o delta
// líquido é exatamente (novo − antigo). Sincroniza o título a receber.
func (uc *SaleUseCase) Update(ctx context.Context, tenantID, id string, in dto.SaleRequest) (*entity.Sale, error) {
	upd, err := saleFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, upd.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Sales.GetByID(tenantID, id)
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
				{Product: old.Product, LocationID: old.LocationID, Delta: old.Quantity},      // estorno
				{Product: upd.Product, LocationID: upd.LocationID, Delta: upd.Quantity.Neg()}, // reaplicação
			},
			Financial: saleFinancial(upd, false),
			Record:    func(r Repos) error { return r.Sales.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete devolve a quantidade ao depósito e remove o título. Título PAGA
// bloqueia a exclusão (regra terminal, não é aviso).
func (uc *SaleUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		s, err := r.Sales.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID:  tenantID,
			Deltas:    []StockDelta{{Product: s.Product, LocationID: s.LocationID, Delta: s.Quantity}},
			Financial: saleFinancial(s, true),
			Record:    func(r Repos) error { return r.Sales.Delete(tenantID, s.ID) },
		}, nil
	})
}

// Get devolve a venda com o título vinculado (se houver).
func (uc *SaleUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Sale, *entity.FinancialObligation, error) {
	s, err := uc.reader.Sales.GetByID(tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return nil, nil, domain.ErrNotFound
	}
	ob, err := uc.reader.Obligations.GetByMovement(tenantID, entity.KindSale, id)
	if err != nil {
		return nil, nil, err
	}
	return s, ob, nil
}
