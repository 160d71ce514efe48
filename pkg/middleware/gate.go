package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"

	// AccessPath é a página do formulário do código de acesso
	AccessPath = "/access"
)

// rotas liberadas sem sessão
var publicPaths = map[string]struct{}{
	AccessPath:     {},
	"/logout":      {},
	"/healthcheck": {},
	"/metrics":     {},
}

// GateMiddleware exige o cookie de sessão. Requisições da API JSON recebem 401;
// páginas HTML são redirecionadas para o formulário com o destino em ?next.
func GateMiddleware(gate gating.Gatekeeper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Enabled() {
				next.ServeHTTP(w, r)
				return
			}
			if _, public := publicPaths[r.URL.Path]; public || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			var token string
			if cookie, err := r.Cookie(gating.SessionCookie); err == nil {
				token = cookie.Value
			}

			claims, err := gate.Validate(token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Debug("Sessão recusada pelo gate")
				denySession(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retorna a sessão validada pelo gate
func SessionFromContext(ctx context.Context) (*domain.SessionClaims, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.SessionClaims)
	return claims, ok
}

// IsAPIRequest informa se a requisição é da API JSON
func IsAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/v1/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func denySession(w http.ResponseWriter, r *http.Request, err error) {
	if IsAPIRequest(r) {
		code := apiErrors.ErrInvalidSession
		message := "Sessão inválida"
		var gateErr *gating.GateError
		if errors.As(err, &gateErr) {
			code = gateErr.Code
			message = gateErr.Err.Error()
		}
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	target := AccessPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusSeeOther)
}
