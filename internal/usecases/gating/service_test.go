package gating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func gateConfig() config.Gate {
	return config.Gate{
		Enabled:       true,
		AccessCode:    "northstar",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
}

func newTestService(t *testing.T, cfg config.Gate) *Service {
	t.Helper()
	s, err := NewService(cfg)
	require.NoError(t, err)
	return s
}

func TestNewService(t *testing.T) {
	t.Run("Gate desabilitado não exige código", func(t *testing.T) {
		s, err := NewService(config.Gate{})
		require.NoError(t, err)
		assert.False(t, s.Enabled())
	})

	t.Run("Gate habilitado sem código", func(t *testing.T) {
		_, err := NewService(config.Gate{Enabled: true, SessionSecret: "x", SessionTTL: time.Hour})
		assert.ErrorIs(t, err, ErrGateMisconfigured)
	})

	t.Run("Hash bcrypt informado tem precedência", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
		require.NoError(t, err)

		cfg := gateConfig()
		cfg.AccessCodeHash = string(hash)
		s := newTestService(t, cfg)

		_, _, err = s.Unlock("from-hash")
		assert.NoError(t, err)
		_, _, err = s.Unlock("northstar")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})
}

func TestService_Unlock(t *testing.T) {
	s := newTestService(t, gateConfig())

	tests := []struct {
		name    string
		code    string
		wantErr error
		apiCode string
	}{
		{name: "Código correto", code: "northstar"},
		{name: "Código com espaços ao redor", code: "  northstar "},
		{name: "Código vazio", code: "   ", wantErr: ErrMissingCode, apiCode: apiErrors.ErrMissingRequiredData},
		{name: "Código errado", code: "southstar", wantErr: ErrInvalidCode, apiCode: apiErrors.ErrInvalidAccessCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expiresAt, err := s.Unlock(tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var gateErr *GateError
				require.ErrorAs(t, err, &gateErr)
				assert.Equal(t, tt.apiCode, gateErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

			claims, err := s.Validate(token)
			require.NoError(t, err)
			assert.True(t, claims.Unlocked)
			assert.Len(t, claims.ID, sessionIDSize)
		})
	}
}

func TestService_Validate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s := newTestService(t, gateConfig())
	s.now = func() time.Time { return base }
	token, _, err := s.Unlock("northstar")
	require.NoError(t, err)

	t.Run("Sessão válida", func(t *testing.T) {
		_, err := s.Validate(token)
		assert.NoError(t, err)
	})

	t.Run("Sessão expirada", func(t *testing.T) {
		s.now = func() time.Time { return base.Add(2 * time.Hour) }
		defer func() { s.now = func() time.Time { return base } }()

		_, err := s.Validate(token)
		assert.ErrorIs(t, err, ErrExpiredSession)
		assert.True(t, IsSessionError(err))
	})

	t.Run("Token vazio", func(t *testing.T) {
		_, err := s.Validate("")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		cfg := gateConfig()
		cfg.SessionSecret = "other-secret"
		other := newTestService(t, cfg)
		other.now = s.now

		forged, _, err := other.Unlock("northstar")
		require.NoError(t, err)

		_, err = s.Validate(forged)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("Token sem desbloqueio", func(t *testing.T) {
		claims := domain.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(base.Add(time.Hour)),
			},
		}
		locked, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = s.Validate(locked)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}
