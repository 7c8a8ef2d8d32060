package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direção normalizada de um lançamento no extrato.
const (
	DirectionEntry = "ENTRADA"
	DirectionExit  = "SAIDA"
)

// StatementEntry é um movimento normalizado do extrato de uma conta de estoque,
// com o saldo acumulado no ponto do lançamento.
type StatementEntry struct {
	ID          string
	Kind        MovementKind
	Date        time.Time
	CreatedAt   time.Time // desempate para movimentos do mesmo dia (ordem de inserção)
	Direction   string
	Quantity    decimal.Decimal // sempre positiva; a direção dá o sinal
	Description string
	Balance     decimal.Decimal
}
