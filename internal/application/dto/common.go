package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rvilela/AgroCampo-api/internal/domain"
)

// validate é a instância única do go-playground/validator (thread-safe, com cache).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida as tags `validate` do request. Falha vira domain.ErrInvalidInput
// com a mensagem do validador anexada.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de datas aceitas nos requests (datas de negócio, sem hora).
const DateLayout = "2006-01-02"
