package deposits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

// UseCase cadastro de depósitos/fazendas (locais de estoque).
type UseCase struct {
	repo repository.DepositRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.DepositRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create cadastra um local de estoque do tenant.
func (uc *UseCase) Create(ctx context.Context, tenantID string, in dto.DepositRequest) (*entity.Deposit, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	d := &entity.Deposit{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Get devolve o depósito do tenant.
func (uc *UseCase) Get(ctx context.Context, tenantID, id string) (*entity.Deposit, error) {
	d, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// List devolve todos os depósitos do tenant.
func (uc *UseCase) List(ctx context.Context, tenantID string) ([]*entity.Deposit, error) {
	return uc.repo.List(tenantID)
}
