package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain"
	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// Dublês em memória do porto de persistência. Reproduzem as invariantes que no
// PostgreSQL são CHECKs (saldo >= 0, atendimento dentro de [0, pedido]) e o
// unique de título por movimento, para que os cenários exercitem os mesmos
// caminhos de erro. O memTxRunner desfaz o estado inteiro quando fn falha.

type memStore struct {
	accounts       map[string]decimal.Decimal
	harvests       map[string]entity.Harvest
	purchases      map[string]entity.Purchase
	sales          map[string]entity.Sale
	transfers      map[string]entity.Transfer
	adjustments    map[string]entity.Adjustment
	beneficiations map[string]entity.Beneficiation
	obligations    map[string]entity.FinancialObligation
	orders         map[string]entity.Order
	orderItems     map[string]entity.OrderItem
	deposits       map[string]entity.Deposit
}

func newMemStore() *memStore {
	return &memStore{
		accounts:       map[string]decimal.Decimal{},
		harvests:       map[string]entity.Harvest{},
		purchases:      map[string]entity.Purchase{},
		sales:          map[string]entity.Sale{},
		transfers:      map[string]entity.Transfer{},
		adjustments:    map[string]entity.Adjustment{},
		beneficiations: map[string]entity.Beneficiation{},
		obligations:    map[string]entity.FinancialObligation{},
		orders:         map[string]entity.Order{},
		orderItems:     map[string]entity.OrderItem{},
		deposits:       map[string]entity.Deposit{},
	}
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		accounts:       copyMap(s.accounts),
		harvests:       copyMap(s.harvests),
		purchases:      copyMap(s.purchases),
		sales:          copyMap(s.sales),
		transfers:      copyMap(s.transfers),
		adjustments:    copyMap(s.adjustments),
		beneficiations: copyMap(s.beneficiations),
		obligations:    copyMap(s.obligations),
		orders:         copyMap(s.orders),
		orderItems:     copyMap(s.orderItems),
		deposits:       copyMap(s.deposits),
	}
}

func (s *memStore) restore(snap *memStore) {
	s.accounts = snap.accounts
	s.harvests = snap.harvests
	s.purchases = snap.purchases
	s.sales = snap.sales
	s.transfers = snap.transfers
	s.adjustments = snap.adjustments
	s.beneficiations = snap.beneficiations
	s.obligations = snap.obligations
	s.orders = snap.orders
	s.orderItems = snap.orderItems
	s.deposits = snap.deposits
}

func accountKey(tenantID, product, locationID string) string {
	return tenantID + "|" + product + "|" + locationID
}

// ── contas de estoque ────────────────────────────────────────────────────────

type memStock struct{ s *memStore }

func (m *memStock) Get(tenantID, product, locationID string) (*entity.StockAccount, error) {
	q, ok := m.s.accounts[accountKey(tenantID, product, locationID)]
	if !ok {
		q = decimal.Zero
	}
	return &entity.StockAccount{TenantID: tenantID, Product: product, LocationID: locationID, Quantity: q}, nil
}

func (m *memStock) EnsureExists(tenantID, product, locationID string) error {
	k := accountKey(tenantID, product, locationID)
	if _, ok := m.s.accounts[k]; !ok {
		m.s.accounts[k] = decimal.Zero
	}
	return nil
}

func (m *memStock) ApplyDelta(tenantID, product, locationID string, delta decimal.Decimal) error {
	k := accountKey(tenantID, product, locationID)
	q, ok := m.s.accounts[k]
	if !ok {
		return domain.ErrNotFound
	}
	next := q.Add(delta)
	if next.IsNegative() {
		return domain.ErrInsufficientStock
	}
	m.s.accounts[k] = next
	return nil
}

func (m *memStock) ListByTenant(tenantID string) ([]*entity.StockAccount, error) {
	return nil, nil
}

// ── movimentos ───────────────────────────────────────────────────────────────

type memHarvests struct{ s *memStore }

func (m *memHarvests) Create(h *entity.Harvest) error { m.s.harvests[h.ID] = *h; return nil }
func (m *memHarvests) GetByID(tenantID, id string) (*entity.Harvest, error) {
	h, ok := m.s.harvests[id]
	if !ok || h.TenantID != tenantID {
		return nil, nil
	}
	return &h, nil
}
func (m *memHarvests) Update(h *entity.Harvest) error { m.s.harvests[h.ID] = *h; return nil }
func (m *memHarvests) Delete(tenantID, id string) error {
	delete(m.s.harvests, id)
	return nil
}
func (m *memHarvests) ListByAccount(tenantID, product, locationID string) ([]*entity.Harvest, error) {
	var out []*entity.Harvest
	for _, h := range m.s.harvests {
		if h.TenantID == tenantID && h.Product == product && h.LocationID == locationID {
			h := h
			out = append(out, &h)
		}
	}
	return out, nil
}

type memPurchases struct{ s *memStore }

func (m *memPurchases) Create(p *entity.Purchase) error { m.s.purchases[p.ID] = *p; return nil }
func (m *memPurchases) GetByID(tenantID, id string) (*entity.Purchase, error) {
	p, ok := m.s.purchases[id]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return &p, nil
}
func (m *memPurchases) Update(p *entity.Purchase) error { m.s.purchases[p.ID] = *p; return nil }
func (m *memPurchases) Delete(tenantID, id string) error {
	delete(m.s.purchases, id)
	return nil
}
func (m *memPurchases) ListByAccount(tenantID, product, locationID string) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range m.s.purchases {
		if p.TenantID == tenantID && p.Product == product && p.LocationID == locationID {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

type memSales struct{ s *memStore }

func (m *memSales) Create(v *entity.Sale) error { m.s.sales[v.ID] = *v; return nil }
func (m *memSales) GetByID(tenantID, id string) (*entity.Sale, error) {
	v, ok := m.s.sales[id]
	if !ok || v.TenantID != tenantID {
		return nil, nil
	}
	return &v, nil
}
func (m *memSales) Update(v *entity.Sale) error { m.s.sales[v.ID] = *v; return nil }
func (m *memSales) Delete(tenantID, id string) error {
	delete(m.s.sales, id)
	return nil
}
func (m *memSales) ListByAccount(tenantID, product, locationID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range m.s.sales {
		if v.TenantID == tenantID && v.Product == product && v.LocationID == locationID {
			v := v
			out = append(out, &v)
		}
	}
	return out, nil
}

type memTransfers struct{ s *memStore }

func (m *memTransfers) Create(t *entity.Transfer) error { m.s.transfers[t.ID] = *t; return nil }
func (m *memTransfers) GetByID(tenantID, id string) (*entity.Transfer, error) {
	t, ok := m.s.transfers[id]
	if !ok || t.TenantID != tenantID {
		return nil, nil
	}
	return &t, nil
}
func (m *memTransfers) Update(t *entity.Transfer) error { m.s.transfers[t.ID] = *t; return nil }
func (m *memTransfers) Delete(tenantID, id string) error {
	delete(m.s.transfers, id)
	return nil
}
func (m *memTransfers) ListByAccount(tenantID, product, locationID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range m.s.transfers {
		if t.TenantID == tenantID && t.Product == product &&
			(t.FromLocationID == locationID || t.ToLocationID == locationID) {
			t := t
			out = append(out, &t)
		}
	}
	return out, nil
}

type memAdjustments struct{ s *memStore }

func (m *memAdjustments) Create(a *entity.Adjustment) error { m.s.adjustments[a.ID] = *a; return nil }
func (m *memAdjustments) GetByID(tenantID, id string) (*entity.Adjustment, error) {
	a, ok := m.s.adjustments[id]
	if !ok || a.TenantID != tenantID {
		return nil, nil
	}
	return &a, nil
}
func (m *memAdjustments) Update(a *entity.Adjustment) error { m.s.adjustments[a.ID] = *a; return nil }
func (m *memAdjustments) Delete(tenantID, id string) error {
	delete(m.s.adjustments, id)
	return nil
}
func (m *memAdjustments) ListByAccount(tenantID, product, locationID string) ([]*entity.Adjustment, error) {
	var out []*entity.Adjustment
	for _, a := range m.s.adjustments {
		if a.TenantID == tenantID && a.Product == product && a.LocationID == locationID {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

type memBeneficiations struct{ s *memStore }

func (m *memBeneficiations) Create(b *entity.Beneficiation) error {
	m.s.beneficiations[b.ID] = *b
	return nil
}
func (m *memBeneficiations) GetByID(tenantID, id string) (*entity.Beneficiation, error) {
	b, ok := m.s.beneficiations[id]
	if !ok || b.TenantID != tenantID {
		return nil, nil
	}
	return &b, nil
}
func (m *memBeneficiations) Update(b *entity.Beneficiation) error {
	m.s.beneficiations[b.ID] = *b
	return nil
}
func (m *memBeneficiations) Delete(tenantID, id string) error {
	delete(m.s.beneficiations, id)
	return nil
}
func (m *memBeneficiations) ListByAccount(tenantID, product, locationID string) ([]*entity.Beneficiation, error) {
	var out []*entity.Beneficiation
	for _, b := range m.s.beneficiations {
		if b.TenantID == tenantID && b.Product == product && b.LocationID == locationID {
			b := b
			out = append(out, &b)
		}
	}
	return out, nil
}

// ── títulos financeiros ──────────────────────────────────────────────────────

type memObligations struct{ s *memStore }

func (m *memObligations) Create(o *entity.FinancialObligation) error {
	for _, ex := range m.s.obligations {
		if ex.MovementKind == o.MovementKind && ex.MovementID == o.MovementID {
			return domain.ErrDuplicate
		}
	}
	m.s.obligations[o.ID] = *o
	return nil
}
func (m *memObligations) GetByID(tenantID, id string) (*entity.FinancialObligation, error) {
	o, ok := m.s.obligations[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return &o, nil
}
func (m *memObligations) GetByMovement(tenantID string, kind entity.MovementKind, movementID string) (*entity.FinancialObligation, error) {
	for _, o := range m.s.obligations {
		if o.TenantID == tenantID && o.MovementKind == kind && o.MovementID == movementID {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}
func (m *memObligations) Update(o *entity.FinancialObligation) error {
	m.s.obligations[o.ID] = *o
	return nil
}
func (m *memObligations) DeleteByMovement(tenantID string, kind entity.MovementKind, movementID string) error {
	for id, o := range m.s.obligations {
		if o.TenantID == tenantID && o.MovementKind == kind && o.MovementID == movementID {
			delete(m.s.obligations, id)
		}
	}
	return nil
}
func (m *memObligations) List(tenantID, kind, status string) ([]*entity.FinancialObligation, error) {
	var out []*entity.FinancialObligation
	for _, o := range m.s.obligations {
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

// ── pedidos ──────────────────────────────────────────────────────────────────

type memOrders struct{ s *memStore }

func (m *memOrders) Create(o *entity.Order, items []*entity.OrderItem) error {
	m.s.orders[o.ID] = *o
	for _, it := range items {
		m.s.orderItems[it.ID] = *it
	}
	return nil
}
func (m *memOrders) GetByID(tenantID, id string) (*entity.Order, error) {
	o, ok := m.s.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return &o, nil
}
func (m *memOrders) GetItem(tenantID, itemID string) (*entity.OrderItem, error) {
	it, ok := m.s.orderItems[itemID]
	if !ok {
		return nil, nil
	}
	if o, ok := m.s.orders[it.OrderID]; !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return &it, nil
}
func (m *memOrders) ListItems(tenantID, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range m.s.orderItems {
		if it.OrderID == orderID {
			it := it
			out = append(out, &it)
		}
	}
	return out, nil
}
func (m *memOrders) ApplyFulfillmentDelta(tenantID, itemID string, delta decimal.Decimal) error {
	it, err := m.GetItem(tenantID, itemID)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	next := it.FulfilledQuantity.Add(delta)
	if next.IsNegative() || next.GreaterThan(it.OrderedQuantity) {
		return domain.ErrOrderExceeded
	}
	it.FulfilledQuantity = next
	m.s.orderItems[itemID] = *it
	return nil
}
func (m *memOrders) UpdateStatus(tenantID, orderID, status string) error {
	o, ok := m.s.orders[orderID]
	if !ok || o.TenantID != tenantID {
		return domain.ErrNotFound
	}
	o.Status = status
	m.s.orders[orderID] = o
	return nil
}

// ── depósitos ────────────────────────────────────────────────────────────────

type memDeposits struct{ s *memStore }

func (m *memDeposits) Create(d *entity.Deposit) error { m.s.deposits[d.ID] = *d; return nil }
func (m *memDeposits) GetByID(tenantID, id string) (*entity.Deposit, error) {
	d, ok := m.s.deposits[id]
	if !ok || d.TenantID != tenantID {
		return nil, nil
	}
	return &d, nil
}
func (m *memDeposits) List(tenantID string) ([]*entity.Deposit, error) {
	var out []*entity.Deposit
	for _, d := range m.s.deposits {
		if d.TenantID == tenantID {
			d := d
			out = append(out, &d)
		}
	}
	return out, nil
}

// ── tx runner ────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(r Repos) error) error {
	snap := t.s.snapshot()
	if err := fn(newMemRepos(t.s)); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func newMemRepos(s *memStore) Repos {
	return Repos{
		Stock:          &memStock{s},
		Harvests:       &memHarvests{s},
		Purchases:      &memPurchases{s},
		Sales:          &memSales{s},
		Transfers:      &memTransfers{s},
		Adjustments:    &memAdjustments{s},
		Beneficiations: &memBeneficiations{s},
		Obligations:    &memObligations{s},
		Orders:         &memOrders{s},
		Deposits:       &memDeposits{s},
	}
}
