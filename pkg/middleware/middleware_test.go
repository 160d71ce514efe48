package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating/mocks"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGateMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGate := mocks.NewMockGatekeeper(ctrl)

	tests := []struct {
		name     string
		path     string
		cookie   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Gate desabilitado libera tudo",
			path: "/manager/kayak",
			setup: func() {
				mockGate.EXPECT().Enabled().Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Rota pública não exige sessão",
			path: "/healthcheck",
			setup: func() {
				mockGate.EXPECT().Enabled().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Página sem sessão redireciona para o formulário",
			path: "/manager/kayak/kayak-c1",
			setup: func() {
				mockGate.EXPECT().Enabled().Return(true)
				mockGate.EXPECT().Validate("").
					Return(nil, gating.NewGateError(gating.ErrInvalidSession, apiErrors.ErrInvalidSession, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/access?next=%2Fmanager%2Fkayak%2Fkayak-c1", rec.Header().Get("Location"))
			},
		},
		{
			name:   "API com sessão expirada recebe 401",
			path:   "/v1/manager/kayak",
			cookie: "expired",
			setup: func() {
				mockGate.EXPECT().Enabled().Return(true)
				mockGate.EXPECT().Validate("expired").
					Return(nil, gating.NewGateError(gating.ErrExpiredSession, apiErrors.ErrExpiredSession, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredSession)
			},
		},
		{
			name:   "Sessão válida segue adiante",
			path:   "/manager",
			cookie: "valid",
			setup: func() {
				mockGate.EXPECT().Enabled().Return(true)
				mockGate.EXPECT().Validate("valid").Return(&domain.SessionClaims{Unlocked: true}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: gating.SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			GateMiddleware(mockGate)(okHandler()).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestGateMiddleware_StoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGate := mocks.NewMockGatekeeper(ctrl)
	mockGate.EXPECT().Enabled().Return(true)
	mockGate.EXPECT().Validate("valid").Return(&domain.SessionClaims{Unlocked: true}, nil)

	var unlocked bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromContext(r.Context())
		unlocked = ok && claims.Unlocked
	})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.AddCookie(&http.Cookie{Name: gating.SessionCookie, Value: "valid"})
	GateMiddleware(mockGate)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, unlocked)
}

func TestCors(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		method  string
		want    string
		status  int
	}{
		{name: "Origem permitida", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, want: "http://localhost:3000", status: http.StatusOK},
		{name: "Origem recusada", allowed: []string{"http://localhost:3000"}, origin: "http://evil.test", method: http.MethodGet, want: "", status: http.StatusOK},
		{name: "Curinga libera qualquer origem", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodGet, want: "http://any.test", status: http.StatusOK},
		{name: "Preflight responde direto", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodOptions, want: "http://any.test", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/summary", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/manager/ghost", nil))

	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get(CorrelationHeader))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/manager", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestRouteOf(t *testing.T) {
	tests := map[string]string{
		"/":                       "/",
		"/manager":                "/manager",
		"/manager/kayak/kayak-c1": "/manager",
		"/v1/manager/kayak":       "/v1/manager",
		"/v1/summary":             "/v1/summary",
		"/managerx":               "other",
		"/favicon.ico":            "other",
	}

	for path, want := range tests {
		assert.Equal(t, want, RouteOf(path), path)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	MetricsMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
