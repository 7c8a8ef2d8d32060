package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// StatementBuilder reconstrói o extrato de uma conta de estoque: une todos os
// tipos de movimento, normaliza para entrada/saída, ordena cronologicamente e
// recalcula o saldo acumulado. Leitura pura — não passa pelo orquestrador.
type StatementBuilder struct {
	reader Repos
}

// NewStatementBuilder constrói o builder com repositórios de leitura.
func NewStatementBuilder(reader Repos) *StatementBuilder {
	return &StatementBuilder{reader: reader}
}

// Build monta o extrato de (tenant, produto, depósito). A ordenação ascendente
// usa (data, created_at) — created_at desempata movimentos do mesmo dia,
// preservando a ordem de inserção para replay determinístico. O resultado é
// devolvido invertido (mais recente primeiro) com o saldo de cada ponto
// inalterado em relação ao passe direto.
func (b *StatementBuilder) Build(ctx context.Context, tenantID, product, locationID string) ([]*entity.StatementEntry, error) {
	if product == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	entries, err := b.collect(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	balance := decimal.Zero
	for _, e := range entries {
		if e.Direction == entity.DirectionEntry {
			balance = balance.Add(e.Quantity)
		} else {
			balance = balance.Sub(e.Quantity)
		}
		e.Balance = balance
	}

	// Inverte: o chamador vê do mais recente ao mais antigo, saldos preservados.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// collect puxa cada tipo de movimento filtrado à tripla (tenant, produto, depósito)
// e normaliza ao formato comum do extrato.
func (b *StatementBuilder) collect(tenantID, product, locationID string) ([]*entity.StatementEntry, error) {
	var entries []*entity.StatementEntry

	harvests, err := b.reader.Harvests.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, h := range harvests {
		desc := "Colheita"
		if h.Plot != "" {
			desc = fmt.Sprintf("Colheita talhão %s", h.Plot)
		}
		entries = append(entries, &entity.StatementEntry{
			ID: h.ID, Kind: entity.KindHarvest, Date: h.Date, CreatedAt: h.CreatedAt,
			Direction: entity.DirectionEntry, Quantity: h.NetWeight, Description: desc,
		})
	}

	purchases, err := b.reader.Purchases.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		entries = append(entries, &entity.StatementEntry{
			ID: p.ID, Kind: entity.KindPurchase, Date: p.Date, CreatedAt: p.CreatedAt,
			Direction: entity.DirectionEntry, Quantity: p.Quantity,
			Description: ObligationDescription("Compra "+p.Product, p.InvoiceNumber, p.Counterparty),
		})
	}

	sales, err := b.reader.Sales.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		entries = append(entries, &entity.StatementEntry{
			ID: s.ID, Kind: entity.KindSale, Date: s.Date, CreatedAt: s.CreatedAt,
			Direction: entity.DirectionExit, Quantity: s.Quantity,
			Description: ObligationDescription("Venda "+s.Product, s.InvoiceNumber, s.Counterparty),
		})
	}

	transfers, err := b.reader.Transfers.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, t := range transfers {
		// O mesmo registro é saída na origem e entrada no destino.
		if t.FromLocationID == locationID {
			entries = append(entries, &entity.StatementEntry{
				ID: t.ID, Kind: entity.KindTransfer, Date: t.Date, CreatedAt: t.CreatedAt,
				Direction: entity.DirectionExit, Quantity: t.Quantity,
				Description: "Transferência enviada",
			})
		}
		if t.ToLocationID == locationID {
			entries = append(entries, &entity.StatementEntry{
				ID: t.ID, Kind: entity.KindTransfer, Date: t.Date, CreatedAt: t.CreatedAt,
				Direction: entity.DirectionEntry, Quantity: t.Quantity,
				Description: "Transferência recebida",
			})
		}
	}

	adjustments, err := b.reader.Adjustments.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, a := range adjustments {
		dir := entity.DirectionEntry
		qty := a.Quantity
		if a.Quantity.IsNegative() {
			dir = entity.DirectionExit
			qty = a.Quantity.Abs()
		}
		entries = append(entries, &entity.StatementEntry{
			ID: a.ID, Kind: entity.KindAdjustment, Date: a.Date, CreatedAt: a.CreatedAt,
			Direction: dir, Quantity: qty, Description: "Ajuste: " + a.Reason,
		})
	}

	beneficiations, err := b.reader.Beneficiations.ListByAccount(tenantID, product, locationID)
	if err != nil {
		return nil, err
	}
	for _, bn := range beneficiations {
		entries = append(entries, &entity.StatementEntry{
			ID: bn.ID, Kind: entity.KindBeneficiation, Date: bn.Date, CreatedAt: bn.CreatedAt,
			Direction: entity.DirectionEntry, Quantity: bn.Quantity,
			Description: fmt.Sprintf("Beneficiamento de %s", bn.SourceProduct),
		})
	}

	return entries, nil
}

// Balance devolve o saldo atual da conta direto da tabela materializada.
func (b *StatementBuilder) Balance(ctx context.Context, tenantID, product, locationID string) (decimal.Decimal, error) {
	if product == "" || locationID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	acc, err := b.reader.Stock.Get(tenantID, product, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Quantity, nil
}
