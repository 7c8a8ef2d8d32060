package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// StockDelta é um crédito/débito planejado em uma conta de estoque.
type StockDelta struct {
	Product    string
	LocationID string
	Delta      decimal.Decimal
}

// FinancialSync instrui a sincronização do título financeiro de um movimento.
// Remove=true (ou condição à vista/sem vencimento) apaga o título existente;
// caso contrário cria ou atualiza.
type FinancialSync struct {
	MovementKind entity.MovementKind
	MovementID   string
	Kind         string // PAGAR | RECEBER
	Remove       bool
	Terms        string
	DueDate      *time.Time
	Amount       decimal.Decimal
	Counterparty string
	Description  string
}

// FulfillmentDelta é um ajuste planejado na quantidade atendida de um item de pedido.
type FulfillmentDelta struct {
	OrderItemID string
	Delta       decimal.Decimal
}

// Plan é o conjunto de efeitos que um handler de movimento produz. Nunca é
// executado pelo handler: o orquestrador aplica tudo dentro de uma transação.
// Record grava (insere/atualiza/apaga) o registro do movimento em si.
type Plan struct {
	TenantID    string
	Deltas      []StockDelta
	Financial   *FinancialSync
	Fulfillment []FulfillmentDelta
	Record      func(r Repos) error
}

// mergeDeltas consolida deltas da mesma conta em um só. Assim a edição de um
// movimento sem troca de produto/depósito aplica exatamente (novo − antigo),
// e com troca aplica o estorno integral na conta antiga e o crédito na nova.
func mergeDeltas(deltas []StockDelta) []StockDelta {
	type key struct{ product, location string }
	idx := make(map[key]int)
	var out []StockDelta
	for _, d := range deltas {
		k := key{d.Product, d.LocationID}
		if i, ok := idx[k]; ok {
			out[i].Delta = out[i].Delta.Add(d.Delta)
			continue
		}
		idx[k] = len(out)
		out = append(out, d)
	}
	return out
}

// mergeFulfillment consolida deltas do mesmo item de pedido.
func mergeFulfillment(deltas []FulfillmentDelta) []FulfillmentDelta {
	idx := make(map[string]int)
	var out []FulfillmentDelta
	for _, d := range deltas {
		if i, ok := idx[d.OrderItemID]; ok {
			out[i].Delta = out[i].Delta.Add(d.Delta)
			continue
		}
		idx[d.OrderItemID] = len(out)
		out = append(out, d)
	}
	return out
}

// ObligationDescription monta a descrição determinística do título:
// produto + documento fiscal + contraparte.
func ObligationDescription(product, invoice, counterparty string) string {
	parts := []string{product}
	if invoice != "" {
		parts = append(parts, fmt.Sprintf("NF %s", invoice))
	}
	if counterparty != "" {
		parts = append(parts, counterparty)
	}
	return strings.Join(parts, " - ")
}
