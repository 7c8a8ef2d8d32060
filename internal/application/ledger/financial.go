package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// syncObligation mantém o título financeiro 1:1 com o movimento de origem:
//   - condição a prazo com vencimento: cria se não existe, atualiza se existe;
//   - condição à vista, sem vencimento ou Remove: apaga o título existente.
//
// Título com status PAGA é imutável: remoção ou alteração de valores retorna
// domain.ErrObligationPaid e aborta a transação inteira.
func syncObligation(r Repos, tenantID string, fs *FinancialSync) error {
	existing, err := r.Obligations.GetByMovement(tenantID, fs.MovementKind, fs.MovementID)
	if err != nil {
		return err
	}

	wantObligation := !fs.Remove && fs.Terms == entity.TermsDeferred && fs.DueDate != nil
	if !wantObligation {
		if existing == nil {
			return nil
		}
		if existing.Status == entity.ObligationPaid {
			return domain.ErrObligationPaid
		}
		return r.Obligations.DeleteByMovement(tenantID, fs.MovementKind, fs.MovementID)
	}

	now := time.Now()
	if existing == nil {
		// O unique (movement_kind, movement_id) no banco garante no máximo um
		// título por movimento mesmo sob concorrência.
		return r.Obligations.Create(&entity.FinancialObligation{
			ID:           uuid.New().String(),
			TenantID:     tenantID,
			Kind:         fs.Kind,
			MovementKind: fs.MovementKind,
			MovementID:   fs.MovementID,
			Description:  fs.Description,
			Counterparty: fs.Counterparty,
			Amount:       fs.Amount,
			DueDate:      *fs.DueDate,
			Status:       entity.ObligationPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if existing.Status == entity.ObligationPaid {
		if existing.Amount.Equal(fs.Amount) && existing.DueDate.Equal(*fs.DueDate) &&
			existing.Counterparty == fs.Counterparty {
			return nil
		}
		return domain.ErrObligationPaid
	}

	existing.Description = fs.Description
	existing.Counterparty = fs.Counterparty
	existing.Amount = fs.Amount
	existing.DueDate = *fs.DueDate
	existing.UpdatedAt = now
	return r.Obligations.Update(existing)
}
