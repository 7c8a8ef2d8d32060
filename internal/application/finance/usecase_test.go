package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

const testTenant = "t-1"

// fakeObligations guarda títulos por valor; leituras devolvem cópia.
type fakeObligations struct {
	byID map[string]entity.FinancialObligation
}

func (f *fakeObligations) Create(o *entity.FinancialObligation) error {
	f.byID[o.ID] = *o
	return nil
}
func (f *fakeObligations) GetByID(tenantID, id string) (*entity.FinancialObligation, error) {
	o, ok := f.byID[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return &o, nil
}
func (f *fakeObligations) GetByMovement(tenantID string, kind entity.MovementKind, movementID string) (*entity.FinancialObligation, error) {
	return nil, nil
}
func (f *fakeObligations) Update(o *entity.FinancialObligation) error {
	f.byID[o.ID] = *o
	return nil
}
func (f *fakeObligations) DeleteByMovement(tenantID string, kind entity.MovementKind, movementID string) error {
	return nil
}
func (f *fakeObligations) List(tenantID, kind, status string) ([]*entity.FinancialObligation, error) {
	var out []*entity.FinancialObligation
	for _, o := range f.byID {
		if o.TenantID != tenantID {
			continue
		}
		if kind != "" && o.Kind != kind {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		o := o
		out = append(out, &o)
	}
	return out, nil
}

type fakeTx struct{ repos ledger.Repos }

func (f *fakeTx) Run(ctx context.Context, fn func(r ledger.Repos) error) error {
	return fn(f.repos)
}

func newFinanceEnv() (*UseCase, *fakeObligations) {
	obligations := &fakeObligations{byID: map[string]entity.FinancialObligation{}}
	repos := ledger.Repos{Obligations: obligations}
	return NewUseCase(&fakeTx{repos: repos}, repos), obligations
}

func seedObligation(f *fakeObligations, id, status string, due time.Time) {
	f.byID[id] = entity.FinancialObligation{
		ID: id, TenantID: testTenant, Kind: entity.ObligationPayable,
		MovementKind: entity.KindPurchase, MovementID: "mov-" + id,
		Counterparty: "Fornecedor", Amount: decimal.NewFromInt(100),
		DueDate: due, Status: status,
	}
}

func TestSettleBaixaTituloPendente(t *testing.T) {
	uc, f := newFinanceEnv()
	seedObligation(f, "o1", entity.ObligationPending, time.Now().AddDate(0, 1, 0))

	o, err := uc.Settle(context.Background(), testTenant, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.ObligationPaid, o.Status)
	require.NotNil(t, o.PaidAt)

	// Baixa repetida é idempotente e preserva o PaidAt original.
	again, err := uc.Settle(context.Background(), testTenant, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.ObligationPaid, again.Status)
	assert.Equal(t, o.PaidAt.Unix(), again.PaidAt.Unix())
}

func TestSettleTituloCanceladoFalha(t *testing.T) {
	uc, f := newFinanceEnv()
	seedObligation(f, "o1", entity.ObligationCanceled, time.Now())

	_, err := uc.Settle(context.Background(), testTenant, "o1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSettleInexistente(t *testing.T) {
	uc, _ := newFinanceEnv()
	_, err := uc.Settle(context.Background(), testTenant, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelRegras(t *testing.T) {
	uc, f := newFinanceEnv()
	seedObligation(f, "pendente", entity.ObligationPending, time.Now())
	seedObligation(f, "paga", entity.ObligationPaid, time.Now())

	require.NoError(t, uc.Cancel(context.Background(), testTenant, "pendente"))
	assert.Equal(t, entity.ObligationCanceled, f.byID["pendente"].Status)

	// Cancelamento repetido é idempotente.
	require.NoError(t, uc.Cancel(context.Background(), testTenant, "pendente"))

	// Título pago não se cancela.
	err := uc.Cancel(context.Background(), testTenant, "paga")
	assert.ErrorIs(t, err, domain.ErrObligationPaid)
}

func TestListVencidaDerivadaNaLeitura(t *testing.T) {
	uc, f := newFinanceEnv()
	seedObligation(f, "vencida", entity.ObligationPending, time.Now().AddDate(0, 0, -10))
	seedObligation(f, "no-prazo", entity.ObligationPending, time.Now().AddDate(0, 1, 0))
	seedObligation(f, "paga", entity.ObligationPaid, time.Now().AddDate(0, 0, -10))

	list, err := uc.List(context.Background(), testTenant, "", entity.ObligationOverdue)
	require.NoError(t, err)
	require.Len(t, list, 1, "só o PENDENTE com vencimento passado é VENCIDA")
	assert.Equal(t, "vencida", list[0].ID)

	// Sem filtro de status vêm todos.
	list, err = uc.List(context.Background(), testTenant, "", "")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
