package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Typed errors for the ledger core. Handlers map them to HTTP status codes
// with errors.As; messages are safe to show to the operator.

// ValidationError signals malformed or missing input. User-correctable.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ReferenceError signals that a referenced entity does not exist.
type ReferenceError struct {
	Entidade string
	ID       string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %s não encontrado", e.Entidade, e.ID)
}

// InsufficientBalanceError rejects a withdrawal larger than the method's
// available balance. It carries the balance and method name so the caller
// can surface both.
type InsufficientBalanceError struct {
	Metodo     string
	Disponivel decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("saldo insuficiente em %s: disponível R$ %s, solicitado R$ %s",
		e.Metodo, e.Disponivel.StringFixed(2), e.Solicitado.StringFixed(2))
}

// PersistenceError wraps store-level failures (connection loss, constraint
// violations not covered by the errors above).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("erro de persistência em %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
