package gating

import (
	"errors"
	"fmt"
)

// Erros do gate de acesso
var (
	ErrMissingCode       = errors.New("código de acesso ausente")
	ErrInvalidCode       = errors.New("código de acesso inválido")
	ErrInvalidSession    = errors.New("sessão inválida")
	ErrExpiredSession    = errors.New("sessão expirada")
	ErrGateMisconfigured = errors.New("gate de acesso sem código configurado")
)

// GateError é um erro com contexto adicional para o gate de acesso
type GateError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GateError) Unwrap() error {
	return e.Err
}

// IsSessionError verifica se o erro invalida a sessão atual
func IsSessionError(err error) bool {
	return errors.Is(err, ErrInvalidSession) || errors.Is(err, ErrExpiredSession)
}

// NewGateError cria um novo erro do gate
func NewGateError(baseErr error, code string, details string) *GateError {
	return &GateError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
