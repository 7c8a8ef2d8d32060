package ledger

import (
	"context"

	"github.com/rvilela/AgroCampo-api/internal/domain/repository"
)

// Repos agrupa os repositórios que o motor de estoque usa. O TxRunner entrega
// uma instância ligada à transação; fora de transação (leituras) usa-se uma
// instância ligada ao pool.
type Repos struct {
	Stock          repository.StockAccountRepository
	Harvests       repository.HarvestRepository
	Purchases      repository.PurchaseRepository
	Sales          repository.SaleRepository
	Transfers      repository.TransferRepository
	Adjustments    repository.AdjustmentRepository
	Beneficiations repository.BeneficiationRepository
	Obligations    repository.ObligationRepository
	Orders         repository.OrderRepository
	Deposits       repository.DepositRepository
}

// TxRunner executa fn dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade para o motor: qualquer erro de fn
// desfaz todos os efeitos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
