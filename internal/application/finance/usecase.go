package finance

import (
	"context"
	"time"

	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// UseCase consulta e liquida títulos financeiros. A criação/atualização/remoção
// é exclusiva do motor de estoque (derivada dos movimentos a prazo); aqui só
// acontecem baixa (pagamento) e cancelamento.
type UseCase struct {
	tx     ledger.TxRunner
	reader ledger.Repos
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx ledger.TxRunner, reader ledger.Repos) *UseCase {
	return &UseCase{tx: tx, reader: reader}
}

// List devolve os títulos do tenant filtrados por tipo (PAGAR/RECEBER) e
// status; VENCIDA filtra os PENDENTE com vencimento passado.
func (uc *UseCase) List(ctx context.Context, tenantID, kind, status string) ([]*entity.FinancialObligation, error) {
	query := status
	if status == entity.ObligationOverdue {
		// VENCIDA é derivado: busca PENDENTE e filtra na aplicação.
		query = entity.ObligationPending
	}
	list, err := uc.reader.Obligations.List(tenantID, kind, query)
	if err != nil {
		return nil, err
	}
	if status != entity.ObligationOverdue {
		return list, nil
	}
	now := time.Now()
	var out []*entity.FinancialObligation
	for _, o := range list {
		if o.EffectiveStatus(now) == entity.ObligationOverdue {
			out = append(out, o)
		}
	}
	return out, nil
}

// Settle dá baixa no título (PENDENTE/VENCIDA -> PAGA). A partir daí o
// movimento de origem fica bloqueado para exclusão.
func (uc *UseCase) Settle(ctx context.Context, tenantID, id string) (*entity.FinancialObligation, error) {
	var out *entity.FinancialObligation
	err := uc.tx.Run(ctx, func(r ledger.Repos) error {
		o, err := r.Obligations.GetByID(tenantID, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		switch o.Status {
		case entity.ObligationPaid:
			out = o // baixa idempotente
			return nil
		case entity.ObligationCanceled:
			return domain.ErrConflict
		}
		now := time.Now()
		o.Status = entity.ObligationPaid
		o.PaidAt = &now
		o.UpdatedAt = now
		out = o
		return r.Obligations.Update(o)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel cancela o título (não o movimento). Título pago não se cancela.
func (uc *UseCase) Cancel(ctx context.Context, tenantID, id string) error {
	return uc.tx.Run(ctx, func(r ledger.Repos) error {
		o, err := r.Obligations.GetByID(tenantID, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status == entity.ObligationPaid {
			return domain.ErrObligationPaid
		}
		if o.Status == entity.ObligationCanceled {
			return nil
		}
		o.Status = entity.ObligationCanceled
		o.UpdatedAt = time.Now()
		return r.Obligations.Update(o)
	})
}
