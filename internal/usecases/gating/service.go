// Package gating implementa o gate de código de acesso compartilhado. A única
// informação persistida é o cookie de sessão assinado.
package gating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/metrics"
	"github.com/vfg2006/agency-dashboard/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/gatekeeper_mock.go -package=mocks

const (
	SessionCookie = "dashboard_session"
	issuer        = "agency-dashboard"
	sessionIDSize = 16
)

// Gatekeeper troca o código de acesso por uma sessão e valida sessões
type Gatekeeper interface {
	Enabled() bool
	Unlock(code string) (token string, expiresAt time.Time, err error)
	Validate(token string) (*domain.SessionClaims, error)
}

type Service struct {
	enabled bool
	hash    []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewService cria o gate. Quando só ACCESS_CODE é informado, o hash bcrypt é
// calculado aqui e o código em texto não é mantido.
func NewService(cfg config.Gate) (*Service, error) {
	s := &Service{
		enabled: cfg.Enabled,
		secret:  []byte(cfg.SessionSecret),
		ttl:     cfg.SessionTTL,
		now:     time.Now,
	}
	if !cfg.Enabled {
		return s, nil
	}

	switch {
	case cfg.AccessCodeHash != "":
		s.hash = []byte(cfg.AccessCodeHash)
	case cfg.AccessCode != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AccessCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("gating: hash access code: %w", err)
		}
		s.hash = hash
	default:
		return nil, ErrGateMisconfigured
	}

	return s, nil
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func (s *Service) Unlock(code string) (string, time.Time, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		metrics.GateAttempts.WithLabelValues("missing").Inc()
		return "", time.Time{}, NewGateError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(code)); err != nil {
		metrics.GateAttempts.WithLabelValues("rejected").Inc()
		return "", time.Time{}, NewGateError(ErrInvalidCode, apiErrors.ErrInvalidAccessCode, "")
	}

	sessionID, err := utils.GenerateID(sessionIDSize)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("gating: session id: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := domain.SessionClaims{
		Unlocked: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("gating: sign session: %w", err)
	}

	metrics.GateAttempts.WithLabelValues("unlocked").Inc()
	return token, expiresAt, nil
}

func (s *Service) Validate(tokenString string) (*domain.SessionClaims, error) {
	if tokenString == "" {
		return nil, NewGateError(ErrInvalidSession, apiErrors.ErrInvalidSession, "missing session")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewGateError(ErrExpiredSession, apiErrors.ErrExpiredSession, "")
		}
		return nil, NewGateError(ErrInvalidSession, apiErrors.ErrInvalidSession, err.Error())
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid || !claims.Unlocked {
		return nil, NewGateError(ErrInvalidSession, apiErrors.ErrInvalidSession, "")
	}

	return claims, nil
}
