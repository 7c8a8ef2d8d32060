package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrForbidden         = errors.New("acesso negado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrOrderExceeded     = errors.New("quantidade excede o saldo do pedido")
	ErrSameLocation      = errors.New("depósito de origem e destino devem ser diferentes")
	ErrObligationPaid    = errors.New("movimento vinculado a título já pago")
	ErrOrderCanceled     = errors.New("pedido cancelado")
)
