package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims é o conteúdo do token de sessão emitido pelo gate de acesso
type SessionClaims struct {
	Unlocked bool `json:"unlocked"`
	jwt.RegisteredClaims
}
