package ledger

import (
	"context"

	"github.com/rvilela/AgroCampo-api/pkg/logger"
)

// Orchestrator aplica o plano de efeitos de um handler de movimento dentro de
// uma única transação: deltas de estoque, sincronização financeira, baixa de
// pedido e gravação do registro. Qualquer violação de invariante (saldo
// negativo, pedido excedido, título pago) aborta tudo — nenhum efeito parcial
// fica visível.
type Orchestrator struct {
	tx  TxRunner
	log *logger.Logger
}

// NewOrchestrator constrói o orquestrador.
func NewOrchestrator(tx TxRunner, log *logger.Logger) *Orchestrator {
	return &Orchestrator{tx: tx, log: log}
}

// Execute abre a transação, chama fn para montar o plano (lendo estado já
// dentro da tx) e aplica os efeitos. Commit só acontece se tudo passar.
func (o *Orchestrator) Execute(ctx context.Context, fn func(r Repos) (*Plan, error)) error {
	return o.tx.Run(ctx, func(r Repos) error {
		plan, err := fn(r)
		if err != nil {
			return err
		}
		return o.apply(r, plan)
	})
}

// apply executa o plano na ordem: estoque -> financeiro -> pedido -> registro.
func (o *Orchestrator) apply(r Repos, p *Plan) error {
	for _, d := range mergeDeltas(p.Deltas) {
		if d.Delta.IsZero() {
			continue
		}
		if err := r.Stock.EnsureExists(p.TenantID, d.Product, d.LocationID); err != nil {
			return err
		}
		if err := r.Stock.ApplyDelta(p.TenantID, d.Product, d.LocationID, d.Delta); err != nil {
			o.log.Warn().
				Str("tenant", p.TenantID).
				Str("product", d.Product).
				Str("location", d.LocationID).
				Str("delta", d.Delta.String()).
				Err(err).
				Msg("delta de estoque rejeitado")
			return err
		}
	}
	if p.Financial != nil {
		if err := syncObligation(r, p.TenantID, p.Financial); err != nil {
			return err
		}
	}
	for _, f := range mergeFulfillment(p.Fulfillment) {
		if f.Delta.IsZero() {
			continue
		}
		if err := applyFulfillment(r, p.TenantID, f); err != nil {
			return err
		}
	}
	if p.Record != nil {
		return p.Record(r)
	}
	return nil
}
