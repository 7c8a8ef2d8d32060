package dto

import "github.com/rvilela/AgroCampo-api/internal/domain/entity"

// DepositRequest body para POST /api/depositos.
type DepositRequest struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=DEPOSITO FAZENDA"`
}

// DepositResponse depósito/fazenda do tenant.
type DepositResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// FromDeposit converte a entidade para resposta HTTP.
func FromDeposit(d *entity.Deposit) *DepositResponse {
	return &DepositResponse{ID: d.ID, Name: d.Name, Kind: d.Kind}
}
