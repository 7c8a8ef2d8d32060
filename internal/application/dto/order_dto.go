package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// OrderItemRequest item do pedido na criação.
type OrderItemRequest struct {
	Product   string          `json:"product" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/pedidos.
type CreateOrderRequest struct {
	Number       string             `json:"number" validate:"required"`
	Counterparty string             `json:"counterparty" validate:"required"`
	Date         string             `json:"date" validate:"required,datetime=2006-01-02"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemDTO item do pedido com quantidade atendida acumulada.
type OrderItemDTO struct {
	ID                string          `json:"id"`
	Product           string          `json:"product"`
	OrderedQuantity   decimal.Decimal `json:"ordered_quantity"`
	FulfilledQuantity decimal.Decimal `json:"fulfilled_quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
}

// OrderResponse pedido com itens e status agregado.
type OrderResponse struct {
	ID           string         `json:"id"`
	Number       string         `json:"number"`
	Counterparty string         `json:"counterparty"`
	Date         string         `json:"date"`
	Status       string         `json:"status"`
	Items        []OrderItemDTO `json:"items"`
}

// FromOrder converte pedido e itens para resposta HTTP.
func FromOrder(o *entity.Order, items []*entity.OrderItem) *OrderResponse {
	resp := &OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Counterparty: o.Counterparty,
		Date:         o.Date.Format(DateLayout),
		Status:       o.Status,
		Items:        make([]OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, OrderItemDTO{
			ID:                it.ID,
			Product:           it.Product,
			OrderedQuantity:   it.OrderedQuantity,
			FulfilledQuantity: it.FulfilledQuantity,
			UnitPrice:         it.UnitPrice,
		})
	}
	return resp
}
