package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatusDerivaVencida(t *testing.T) {
	ref := time.Date(2026, 5, 10, 15, 30, 0, 0, time.UTC)

	pendenteVencida := &FinancialObligation{Status: ObligationPending, DueDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, ObligationOverdue, pendenteVencida.EffectiveStatus(ref))

	// Vence hoje: ainda não é vencida.
	pendenteHoje := &FinancialObligation{Status: ObligationPending, DueDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, ObligationPending, pendenteHoje.EffectiveStatus(ref))

	pendenteFutura := &FinancialObligation{Status: ObligationPending, DueDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, ObligationPending, pendenteFutura.EffectiveStatus(ref))

	// PAGA e CANCELADA nunca viram VENCIDA, mesmo com vencimento passado.
	paga := &FinancialObligation{Status: ObligationPaid, DueDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, ObligationPaid, paga.EffectiveStatus(ref))

	cancelada := &FinancialObligation{Status: ObligationCanceled, DueDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, ObligationCanceled, cancelada.EffectiveStatus(ref))
}
