package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status agregado do pedido, derivado dos itens após cada baixa.
// CANCELADO é terminal: só a ação explícita de cancelamento o define e a
// reconciliação nunca o sobrescreve.
const (
	OrderOpen      = "ABERTO"
	OrderPartially = "PARCIAL"
	OrderFulfilled = "ATENDIDO"
	OrderCanceled  = "CANCELADO"
)

// Order é um pedido de compra (contrato) cujo atendimento se dá por múltiplas compras.
type Order struct {
	ID           string
	TenantID     string
	Number       string
	Counterparty string
	Date         time.Time
	Status       string
	CreatedAt    time.Time
}

// OrderItem é um item do pedido. Invariante: 0 <= FulfilledQuantity <= OrderedQuantity
// (constraint CHECK no banco, verificada a cada delta de atendimento).
type OrderItem struct {
	ID                string
	OrderID           string
	Product           string
	OrderedQuantity   decimal.Decimal
	FulfilledQuantity decimal.Decimal
	UnitPrice         decimal.Decimal
}

// DeriveOrderStatus calcula o status agregado a partir dos itens:
// todos zerados -> ABERTO; todos completos -> ATENDIDO; senão PARCIAL.
func DeriveOrderStatus(items []*OrderItem) string {
	if len(items) == 0 {
		return OrderOpen
	}
	allZero := true
	allFull := true
	for _, it := range items {
		if !it.FulfilledQuantity.IsZero() {
			allZero = false
		}
		if it.FulfilledQuantity.LessThan(it.OrderedQuantity) {
			allFull = false
		}
	}
	switch {
	case allZero:
		return OrderOpen
	case allFull:
		return OrderFulfilled
	default:
		return OrderPartially
	}
}
