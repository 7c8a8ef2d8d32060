package repository

import "github.com/rvilela/AgroCampo-api/internal/domain/entity"

// ObligationRepository define o porto de persistência dos títulos financeiros.
// O vínculo 1:1 com o movimento de origem é garantido por unique constraint no
// banco (movement_kind, movement_id), não por busca-e-criação na aplicação.
type ObligationRepository interface {
	Create(o *entity.FinancialObligation) error
	GetByID(tenantID, id string) (*entity.FinancialObligation, error)
	// GetByMovement devolve o título vinculado ao movimento, ou nil se não houver.
	GetByMovement(tenantID string, kind entity.MovementKind, movementID string) (*entity.FinancialObligation, error)
	Update(o *entity.FinancialObligation) error
	DeleteByMovement(tenantID string, kind entity.MovementKind, movementID string) error
	// List filtra por tipo (PAGAR/RECEBER) e status; strings vazias não filtram.
	List(tenantID, kind, status string) ([]*entity.FinancialObligation, error)
}
