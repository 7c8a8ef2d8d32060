package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// StockAccountRepository define o porto para consultar/atualizar saldos por
// (tenant, produto, depósito). Mutações só ocorrem dentro de transação orquestrada.
type StockAccountRepository interface {
	// Get devolve a conta; se não existir, devolve conta com saldo zero.
	Get(tenantID, product, locationID string) (*entity.StockAccount, error)
	// EnsureExists cria a conta com saldo zero se ausente (INSERT ... ON CONFLICT DO NOTHING).
	EnsureExists(tenantID, product, locationID string) error
	// ApplyDelta incrementa/decrementa o saldo de forma atômica.
	// Retorna domain.ErrInsufficientStock se o resultado ficaria negativo.
	ApplyDelta(tenantID, product, locationID string, delta decimal.Decimal) error
	// ListByTenant devolve todas as contas do tenant (consulta de saldos).
	ListByTenant(tenantID string) ([]*entity.StockAccount, error)
}
