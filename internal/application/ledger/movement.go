package ledger

import (
	"time"

	"github.com/rvilela/AgroCampo-api/internal/application/dto"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

// Helpers compartilhados pelos casos de uso de movimento.

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// parseDueDate valida a coerência condição/vencimento: A_PRAZO exige vencimento,
// A_VISTA não carrega vencimento.
func parseDueDate(terms, s string) (*time.Time, error) {
	if terms == entity.TermsDeferred {
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	return nil, nil
}

// checkDeposit garante que o depósito existe e pertence ao tenant
// (consulta já escopada: outro tenant = não encontrado).
func checkDeposit(repo repository.DepositRepository, tenantID, id string) error {
	d, err := repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return nil
}
