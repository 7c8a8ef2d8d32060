package entity

import "time"

// Tipo do local de estoque.
const (
	DepositKindWarehouse = "DEPOSITO"
	DepositKindFarm      = "FAZENDA"
)

// Deposit representa um local físico de estoque (depósito ou fazenda) do tenant.
type Deposit struct {
	ID        string
	TenantID  string
	Name      string
	Kind      string // DEPOSITO | FAZENDA
	CreatedAt time.Time
}
