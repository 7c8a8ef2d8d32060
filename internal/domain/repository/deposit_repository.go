package repository

import "github.com/rvilela/AgroCampo-api/internal/domain/entity"

// DepositRepository define o porto de persistência de depósitos/fazendas.
type DepositRepository interface {
	Create(d *entity.Deposit) error
	GetByID(tenantID, id string) (*entity.Deposit, error)
	List(tenantID string) ([]*entity.Deposit, error)
}
