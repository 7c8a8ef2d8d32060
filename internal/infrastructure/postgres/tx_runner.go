package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
)

// Garante que TxRunner implementa ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// NewRepos monta o conjunto de repositórios ligado a um Querier (pool ou tx).
func NewRepos(q Querier) ledger.Repos {
	return ledger.Repos{
		Stock:          NewStockAccountRepository(q),
		Harvests:       NewHarvestRepository(q),
		Purchases:      NewPurchaseRepository(q),
		Sales:          NewSaleRepository(q),
		Transfers:      NewTransferRepository(q),
		Adjustments:    NewAdjustmentRepository(q),
		Beneficiations: NewBeneficiationRepository(q),
		Obligations:    NewObligationRepository(q),
		Orders:         NewOrderRepository(q),
		Deposits:       NewDepositRepository(q),
	}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. É o único caminho de escrita do motor de estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
