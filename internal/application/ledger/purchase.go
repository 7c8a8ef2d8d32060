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

// PurchaseUseCase registra, edita e exclui compras (entrada de estoque).
// Compra vinculada a item de pedido baixa o saldo do pedido; exceder o saldo
// aborta a transação inteira.
type PurchaseUseCase struct {
	orch   *Orchestrator
	reader Repos
}

// NewPurchaseUseCase constrói o caso de uso.
func NewPurchaseUseCase(orch *Orchestrator, reader Repos) *PurchaseUseCase {
	return &PurchaseUseCase{orch: orch, reader: reader}
}

func purchaseFromRequest(tenantID, userID string, in dto.PurchaseRequest) (*entity.Purchase, error) {
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
	var orderItemID *string
	if in.OrderItemID != "" {
		orderItemID = &in.OrderItemID
	}
	now := time.Now()
	return &entity.Purchase{
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
		OrderItemID:   orderItemID,
		CreatedAt:     now,
		CreatedBy:     userID,
	}, nil
}

func purchaseFinancial(p *entity.Purchase, remove bool) *FinancialSync {
	return &FinancialSync{
		MovementKind: entity.KindPurchase,
		MovementID:   p.ID,
		Kind:         entity.ObligationPayable,
		Remove:       remove,
		Terms:        p.PaymentTerms,
		DueDate:      p.DueDate,
		Amount:       p.Quantity.Mul(p.UnitPrice),
		Counterparty: p.Counterparty,
		Description:  ObligationDescription(p.Product, p.InvoiceNumber, p.Counterparty),
	}
}

// checkOrderItem valida o vínculo com o item de pedido: existe, é do tenant e
// é do mesmo produto da compra.
func checkOrderItem(r Repos, tenantID string, p *entity.Purchase) error {
	if p.OrderItemID == nil {
		return nil
	}
	item, err := r.Orders.GetItem(tenantID, *p.OrderItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.Product != p.Product {
		return domain.ErrInvalidInput
	}
	return nil
}

// purchaseFulfillment monta os deltas de baixa de pedido entre o estado antigo
// e o novo (nil para criação/exclusão conforme o caso).
func purchaseFulfillment(old, upd *entity.Purchase) []FulfillmentDelta {
	var out []FulfillmentDelta
	if old != nil && old.OrderItemID != nil {
		out = append(out, FulfillmentDelta{OrderItemID: *old.OrderItemID, Delta: old.Quantity.Neg()})
	}
	if upd != nil && upd.OrderItemID != nil {
		out = append(out, FulfillmentDelta{OrderItemID: *upd.OrderItemID, Delta: upd.Quantity})
	}
	return out
}

// Create credita o depósito, baixa o pedido (se vinculado) e, se a prazo,
// cria o título a pagar.
func (uc *PurchaseUseCase) Create(ctx context.Context, tenantID, userID string, in dto.PurchaseRequest) (*entity.Purchase, error) {
	p, err := purchaseFromRequest(tenantID, userID, in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, p.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		if err := checkOrderItem(r, tenantID, p); err != nil {
			return nil, err
		}
		return &Plan{
			TenantID:    tenantID,
			Deltas:      []StockDelta{{Product: p.Product, LocationID: p.LocationID, Delta: p.Quantity}},
			Financial:   purchaseFinancial(p, false),
			Fulfillment: purchaseFulfillment(nil, p),
			Record:      func(r Repos) error { return r.Purchases.Create(p) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update estorna o efeito antigo (estoque e baixa de pedido) e aplica o novo.
func (uc *PurchaseUseCase) Update(ctx context.Context, tenantID, id string, in dto.PurchaseRequest) (*entity.Purchase, error) {
	upd, err := purchaseFromRequest(tenantID, "", in)
	if err != nil {
		return nil, err
	}
	if err := checkDeposit(uc.reader.Deposits, tenantID, upd.LocationID); err != nil {
		return nil, err
	}
	err = uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		old, err := r.Purchases.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if old == nil {
			return nil, domain.ErrNotFound
		}
		upd.ID = old.ID
		upd.CreatedAt = old.CreatedAt
		upd.CreatedBy = old.CreatedBy
		if err := checkOrderItem(r, tenantID, upd); err != nil {
			return nil, err
		}
		return &Plan{
			TenantID: tenantID,
			Deltas: []StockDelta{
				{Product: old.Product, LocationID: old.LocationID, Delta: old.Quantity.Neg()}, // estorno
				{Product: upd.Product, LocationID: upd.LocationID, Delta: upd.Quantity},       // reaplicação
			},
			Financial:   purchaseFinancial(upd, false),
			Fulfillment: purchaseFulfillment(old, upd),
			Record:      func(r Repos) error { return r.Purchases.Update(upd) },
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

// Delete estorna o crédito de estoque e a baixa de pedido, e remove o título.
// Título PAGA bloqueia a exclusão; estoque já consumido também (o estorno
// deixaria a conta negativa).
func (uc *PurchaseUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.orch.Execute(ctx, func(r Repos) (*Plan, error) {
		p, err := r.Purchases.GetByID(tenantID, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		return &Plan{
			TenantID:    tenantID,
			Deltas:      []StockDelta{{Product: p.Product, LocationID: p.LocationID, Delta: p.Quantity.Neg()}},
			Financial:   purchaseFinancial(p, true),
			Fulfillment: purchaseFulfillment(p, nil),
			Record:      func(r Repos) error { return r.Purchases.Delete(tenantID, p.ID) },
		}, nil
	})
}

// Get devolve a compra com o título vinculado (se houver).
func (uc *PurchaseUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Purchase, *entity.FinancialObligation, error) {
	p, err := uc.reader.Purchases.GetByID(tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrNotFound
	}
	ob, err := uc.reader.Obligations.GetByMovement(tenantID, entity.KindPurchase, id)
	if err != nil {
		return nil, nil, err
	}
	return p, ob, nil
}
