package repository

import "github.com/rvilela/AgroCampo-api/internal/domain/entity"

// Portos de persistência dos movimentos, um por tipo (uma tabela por tipo).
// GetByID/Delete são escopados por tenant: registro de outro tenant = não encontrado.
// ListByAccount alimenta o extrato: filtra por (tenant, produto, depósito).

// HarvestRepository persiste colheitas.
type HarvestRepository interface {
	Create(h *entity.Harvest) error
	GetByID(tenantID, id string) (*entity.Harvest, error)
	Update(h *entity.Harvest) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Harvest, error)
}

// PurchaseRepository persiste compras.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(tenantID, id string) (*entity.Purchase, error)
	Update(p *entity.Purchase) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Purchase, error)
}

// SaleRepository persiste vendas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	GetByID(tenantID, id string) (*entity.Sale, error)
	Update(s *entity.Sale) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Sale, error)
}

// TransferRepository persiste transferências.
// ListByAccount devolve transferências onde o depósito é origem ou destino.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	GetByID(tenantID, id string) (*entity.Transfer, error)
	Update(t *entity.Transfer) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Transfer, error)
}

// AdjustmentRepository persiste ajustes manuais.
type AdjustmentRepository interface {
	Create(a *entity.Adjustment) error
	GetByID(tenantID, id string) (*entity.Adjustment, error)
	Update(a *entity.Adjustment) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Adjustment, error)
}

// BeneficiationRepository persiste entradas de beneficiamento.
type BeneficiationRepository interface {
	Create(b *entity.Beneficiation) error
	GetByID(tenantID, id string) (*entity.Beneficiation, error)
	Update(b *entity.Beneficiation) error
	Delete(tenantID, id string) error
	ListByAccount(tenantID, product, locationID string) ([]*entity.Beneficiation, error)
}
