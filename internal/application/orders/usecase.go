package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// UseCase gerencia pedidos de compra: criação com itens, consulta e
// cancelamento. A baixa de saldo dos itens é exclusiva do motor de estoque
// (compras vinculadas); aqui só nasce e morre o contrato.
type UseCase struct {
	tx     ledger.TxRunner
	reader ledger.Repos
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ledger.TxRunner, reader ledger.Repos) *UseCase {
	return &UseCase{tx: tx, reader: reader}
}

// Create grava o pedido e seus itens com atendimento zerado e status ABERTO.
func (uc *UseCase) Create(ctx context.Context, tenantID string, in dto.CreateOrderRequest) (*entity.Order, []*entity.OrderItem, error) {
	if err := dto.Validate(in); err != nil {
		return nil, nil, err
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Number:       in.Number,
		Counterparty: in.Counterparty,
		Date:         date,
		Status:       entity.OrderOpen,
		CreatedAt:    time.Now(),
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidInput
		}
		items = append(items, &entity.OrderItem{
			ID:                uuid.New().String(),
			OrderID:           order.ID,
			Product:           it.Product,
			OrderedQuantity:   it.Quantity,
			FulfilledQuantity: decimal.Zero,
			UnitPrice:         it.UnitPrice,
		})
	}
	err = uc.tx.Run(ctx, func(r ledger.Repos) error {
		return r.Orders.Create(order, items)
	})
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// Get devolve o pedido com itens.
func (uc *UseCase) Get(ctx context.Context, tenantID, id string) (*entity.Order, []*entity.OrderItem, error) {
	order, err := uc.reader.Orders.GetByID(tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.reader.Orders.ListItems(tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// Cancel marca o pedido como CANCELADO (estado terminal, nunca sobrescrito
// pela reconciliação). Compras já vinculadas permanecem; novas baixas são
// recusadas pelo motor.
func (uc *UseCase) Cancel(ctx context.Context, tenantID, id string) error {
	return uc.tx.Run(ctx, func(r ledger.Repos) error {
		order, err := r.Orders.GetByID(tenantID, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.OrderCanceled {
			return nil
		}
		return r.Orders.UpdateStatus(tenantID, id, entity.OrderCanceled)
	})
}
