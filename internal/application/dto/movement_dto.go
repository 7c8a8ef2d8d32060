package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// HarvestRequest body para POST/PUT de colheitas. O peso líquido é o que credita o saldo.
type HarvestRequest struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Product     string          `json:"product" validate:"required"`
	Plot        string          `json:"plot"`
	LocationID  string          `json:"location_id" validate:"required,uuid4"`
	GrossWeight decimal.Decimal `json:"gross_weight"`
	NetWeight   decimal.Decimal `json:"net_weight"`
	Document    string          `json:"document"`
}

// PurchaseRequest body para POST/PUT de compras.
// order_item_id opcional vincula a compra a um item de pedido (baixa de saldo).
type PurchaseRequest struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Product       string          `json:"product" validate:"required"`
	LocationID    string          `json:"location_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Counterparty  string          `json:"counterparty" validate:"required"`
	InvoiceNumber string          `json:"invoice_number"`
	PaymentTerms  string          `json:"payment_terms" validate:"required,oneof=A_VISTA A_PRAZO"`
	DueDate       string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	OrderItemID   string          `json:"order_item_id" validate:"omitempty,uuid4"`
}

// SaleRequest body para POST/PUT de vendas.
type SaleRequest struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Product       string          `json:"product" validate:"required"`
	LocationID    string          `json:"location_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Counterparty  string          `json:"counterparty" validate:"required"`
	InvoiceNumber string          `json:"invoice_number"`
	PaymentTerms  string          `json:"payment_terms" validate:"required,oneof=A_VISTA A_PRAZO"`
	DueDate       string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// TransferRequest body para POST/PUT de transferências entre depósitos.
type TransferRequest struct {
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	Product        string          `json:"product" validate:"required"`
	FromLocationID string          `json:"from_location_id" validate:"required,uuid4"`
	ToLocationID   string          `json:"to_location_id" validate:"required,uuid4"`
	Quantity       decimal.Decimal `json:"quantity"`
	Notes          string          `json:"notes"`
}

// AdjustmentRequest body para POST/PUT de ajustes. Quantidade assinada:
// positiva entra, negativa sai.
type AdjustmentRequest struct {
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Product    string          `json:"product" validate:"required"`
	LocationID string          `json:"location_id" validate:"required,uuid4"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason" validate:"required"`
}

// BeneficiationRequest body para POST/PUT de beneficiamentos (entrada do produto resultante).
type BeneficiationRequest struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	SourceProduct string          `json:"source_product" validate:"required"`
	Product       string          `json:"product" validate:"required"`
	LocationID    string          `json:"location_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity"`
	Notes         string          `json:"notes"`
}

// ObligationDTO resumo do título financeiro vinculado a um movimento.
type ObligationDTO struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
	Status       string          `json:"status"`
}

// FromObligation converte a entidade, derivando VENCIDA na leitura.
func FromObligation(o *entity.FinancialObligation) *ObligationDTO {
	if o == nil {
		return nil
	}
	return &ObligationDTO{
		ID:           o.ID,
		Kind:         o.Kind,
		Description:  o.Description,
		Counterparty: o.Counterparty,
		Amount:       o.Amount,
		DueDate:      o.DueDate.Format(DateLayout),
		Status:       o.EffectiveStatus(time.Now()),
	}
}

// PurchaseResponse resposta de GET de compra com referências agregadas.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Product       string          `json:"product"`
	LocationID    string          `json:"location_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Counterparty  string          `json:"counterparty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PaymentTerms  string          `json:"payment_terms"`
	DueDate       string          `json:"due_date,omitempty"`
	OrderItemID   string          `json:"order_item_id,omitempty"`
	Obligation    *ObligationDTO  `json:"obligation,omitempty"`
}

// FromPurchase converte a entidade para resposta HTTP.
func FromPurchase(p *entity.Purchase, ob *entity.FinancialObligation) *PurchaseResponse {
	resp := &PurchaseResponse{
		ID:            p.ID,
		Date:          p.Date.Format(DateLayout),
		Product:       p.Product,
		LocationID:    p.LocationID,
		Quantity:      p.Quantity,
		UnitPrice:     p.UnitPrice,
		Counterparty:  p.Counterparty,
		InvoiceNumber: p.InvoiceNumber,
		PaymentTerms:  p.PaymentTerms,
		Obligation:    FromObligation(ob),
	}
	if p.DueDate != nil {
		resp.DueDate = p.DueDate.Format(DateLayout)
	}
	if p.OrderItemID != nil {
		resp.OrderItemID = *p.OrderItemID
	}
	return resp
}

// HarvestResponse resposta de GET de colheita.
type HarvestResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Product     string          `json:"product"`
	Plot        string          `json:"plot,omitempty"`
	LocationID  string          `json:"location_id"`
	GrossWeight decimal.Decimal `json:"gross_weight"`
	NetWeight   decimal.Decimal `json:"net_weight"`
	Document    string          `json:"document,omitempty"`
}

// FromHarvest converte a entidade para resposta HTTP.
func FromHarvest(h *entity.Harvest) *HarvestResponse {
	return &HarvestResponse{
		ID:          h.ID,
		Date:        h.Date.Format(DateLayout),
		Product:     h.Product,
		Plot:        h.Plot,
		LocationID:  h.LocationID,
		GrossWeight: h.GrossWeight,
		NetWeight:   h.NetWeight,
		Document:    h.Document,
	}
}

// TransferResponse resposta de GET de transferência.
type TransferResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Product        string          `json:"product"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Notes          string          `json:"notes,omitempty"`
}

// FromTransfer converte a entidade para resposta HTTP.
func FromTransfer(t *entity.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:             t.ID,
		Date:           t.Date.Format(DateLayout),
		Product:        t.Product,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Quantity:       t.Quantity,
		Notes:          t.Notes,
	}
}

// AdjustmentResponse resposta de GET de ajuste (quantidade assinada).
type AdjustmentResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Product    string          `json:"product"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
}

// FromAdjustment converte a entidade para resposta HTTP.
func FromAdjustment(a *entity.Adjustment) *AdjustmentResponse {
	return &AdjustmentResponse{
		ID:         a.ID,
		Date:       a.Date.Format(DateLayout),
		Product:    a.Product,
		LocationID: a.LocationID,
		Quantity:   a.Quantity,
		Reason:     a.Reason,
	}
}

// BeneficiationResponse resposta de GET de beneficiamento.
type BeneficiationResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	SourceProduct string          `json:"source_product"`
	Product       string          `json:"product"`
	LocationID    string          `json:"location_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Notes         string          `json:"notes,omitempty"`
}

// FromBeneficiation converte a entidade para resposta HTTP.
func FromBeneficiation(b *entity.Beneficiation) *BeneficiationResponse {
	return &BeneficiationResponse{
		ID:            b.ID,
		Date:          b.Date.Format(DateLayout),
		SourceProduct: b.SourceProduct,
		Product:       b.Product,
		LocationID:    b.LocationID,
		Quantity:      b.Quantity,
		Notes:         b.Notes,
	}
}

// SaleResponse resposta de GET de venda com o título vinculado.
type SaleResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Product       string          `json:"product"`
	LocationID    string          `json:"location_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Counterparty  string          `json:"counterparty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PaymentTerms  string          `json:"payment_terms"`
	DueDate       string          `json:"due_date,omitempty"`
	Obligation    *ObligationDTO  `json:"obligation,omitempty"`
}

// FromSale converte a entidade para resposta HTTP.
func FromSale(s *entity.Sale, ob *entity.FinancialObligation) *SaleResponse {
	resp := &SaleResponse{
		ID:            s.ID,
		Date:          s.Date.Format(DateLayout),
		Product:       s.Product,
		LocationID:    s.LocationID,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Counterparty:  s.Counterparty,
		InvoiceNumber: s.InvoiceNumber,
		PaymentTerms:  s.PaymentTerms,
		Obligation:    FromObligation(ob),
	}
	if s.DueDate != nil {
		resp.DueDate = s.DueDate.Format(DateLayout)
	}
	return resp
}
