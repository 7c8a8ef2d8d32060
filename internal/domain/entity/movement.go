package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind identifica o tipo de movimento de estoque (variante etiquetada).
// Cada tipo tem tabela e handler próprios; o orquestrador trata todos da mesma forma.
type MovementKind string

const (
	KindHarvest       MovementKind = "COLHEITA"
	KindPurchase      MovementKind = "COMPRA"
	KindSale          MovementKind = "VENDA"
	KindTransfer      MovementKind = "TRANSFERENCIA"
	KindAdjustment    MovementKind = "AJUSTE"
	KindBeneficiation MovementKind = "BENEFICIAMENTO"
)

// Condições de pagamento de compras e vendas.
const (
	TermsCash     = "A_VISTA" // sem título financeiro
	TermsDeferred = "A_PRAZO" // gera título (pagar/receber) com vencimento
)

// Harvest registra a entrada de uma colheita no depósito (crédito pelo peso líquido).
type Harvest struct {
	ID          string
	TenantID    string
	Date        time.Time
	Product     string
	Plot        string // talhão/lavoura de origem
	LocationID  string
	GrossWeight decimal.Decimal
	NetWeight   decimal.Decimal // peso após descontos de umidade/impureza; é o que entra no saldo
	Document    string          // romaneio/ticket de balança
	CreatedAt   time.Time
	CreatedBy   string
}

// Purchase registra a compra de produto (crédito no depósito de destino).
// OrderItemID opcional vincula a compra a um item de pedido para baixa de saldo.
type Purchase struct {
	ID            string
	TenantID      string
	Date          time.Time
	Product       string
	LocationID    string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Counterparty  string // fornecedor
	InvoiceNumber string
	PaymentTerms  string // A_VISTA | A_PRAZO
	DueDate       *time.Time
	OrderItemID   *string
	CreatedAt     time.Time
	CreatedBy     string
}

// Sale registra a venda de produto (débito no depósito de origem).
type Sale struct {
	ID            string
	TenantID      string
	Date          time.Time
	Product       string
	LocationID    string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Counterparty  string // cliente
	InvoiceNumber string
	PaymentTerms  string // A_VISTA | A_PRAZO
	DueDate       *time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// Transfer move produto entre dois depósitos do mesmo tenant (débito origem + crédito destino).
type Transfer struct {
	ID             string
	TenantID       string
	Date           time.Time
	Product        string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
}

// Adjustment aplica um delta assinado direto em uma conta (positivo entra, negativo sai).
type Adjustment struct {
	ID         string
	TenantID   string
	Date       time.Time
	Product    string
	LocationID string
	Quantity   decimal.Decimal // assinada
	Reason     string
	CreatedAt  time.Time
	CreatedBy  string
}

// Beneficiation registra a entrada de produto beneficiado (crédito puro no destino).
// A matéria-prima vem de um pool conceitualmente distinto e não é debitada aqui.
type Beneficiation struct {
	ID            string
	TenantID      string
	Date          time.Time
	SourceProduct string // produto de origem (informativo)
	Product       string // produto resultante que entra no saldo
	LocationID    string
	Quantity      decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	CreatedBy     string
}
