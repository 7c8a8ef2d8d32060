package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvilela/AgroCampo-api/internal/domain/entity"
)

// StatementEntryDTO lançamento do extrato com saldo no ponto.
type StatementEntryDTO struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	Direction   string          `json:"direction"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
}

// StatementResponse extrato de uma conta de estoque, do mais recente ao mais antigo.
type StatementResponse struct {
	Product        string              `json:"product"`
	LocationID     string              `json:"location_id"`
	CurrentBalance decimal.Decimal     `json:"current_balance"`
	Entries        []StatementEntryDTO `json:"entries"`
}

// FromStatement converte os lançamentos do extrato para resposta HTTP.
func FromStatement(product, locationID string, entries []*entity.StatementEntry) *StatementResponse {
	resp := &StatementResponse{
		Product:    product,
		LocationID: locationID,
		Entries:    make([]StatementEntryDTO, 0, len(entries)),
	}
	// Lista chega invertida (mais recente primeiro): o saldo atual é o do primeiro.
	if len(entries) > 0 {
		resp.CurrentBalance = entries[0].Balance
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, StatementEntryDTO{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Date:        e.Date.Format(DateLayout),
			CreatedAt:   e.CreatedAt,
			Direction:   e.Direction,
			Quantity:    e.Quantity,
			Description: e.Description,
			Balance:     e.Balance,
		})
	}
	return resp
}
