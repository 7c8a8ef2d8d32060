package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAccount representa o saldo atual de um produto em um depósito para um tenant.
// Criada implicitamente no primeiro movimento; quantity nunca fica negativa
// (constraint CHECK no banco, verificada a cada delta).
type StockAccount struct {
	TenantID   string
	Product    string // chave do produto/cultivar (ex.: "SOJA", "MILHO-AG1051")
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
