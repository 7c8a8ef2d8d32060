package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo do título financeiro derivado de um movimento a prazo.
const (
	ObligationPayable    = "PAGAR"   // compra a prazo
	ObligationReceivable = "RECEBER" // venda a prazo
)

// Status do título financeiro. PAGA torna o movimento de origem imutável para exclusão.
const (
	ObligationPending  = "PENDENTE"
	ObligationPaid     = "PAGA"
	ObligationOverdue  = "VENCIDA" // derivado na leitura: PENDENTE com vencimento passado
	ObligationCanceled = "CANCELADA"
)

// FinancialObligation é um título a pagar ou a receber com vínculo exclusivo 1:1
// ao movimento de origem (unique em movement_kind+movement_id no banco).
type FinancialObligation struct {
	ID           string
	TenantID     string
	Kind         string // PAGAR | RECEBER
	MovementKind MovementKind
	MovementID   string
	Description  string
	Counterparty string
	Amount       decimal.Decimal
	DueDate      time.Time
	Status       string
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveStatus devolve o status apresentado ao usuário: PENDENTE com
// vencimento anterior a ref vira VENCIDA. O banco guarda apenas PENDENTE/PAGA/CANCELADA.
func (o *FinancialObligation) EffectiveStatus(ref time.Time) string {
	if o.Status == ObligationPending && o.DueDate.Before(ref.Truncate(24*time.Hour)) {
		return ObligationOverdue
	}
	return o.Status
}
