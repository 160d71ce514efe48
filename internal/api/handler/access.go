package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/log"
)

type AccessRequest struct {
	Code string `json:"code"`
	Next string `json:"next,omitempty"`
}

type AccessResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
	Next      string    `json:"next"`
}

// safeNext aceita apenas caminhos locais para evitar redirecionamento aberto
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return domain.ManagerRoot
	}
	return next
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// AccessForm exibe o formulário do código de acesso
func AccessForm(gate gating.Gatekeeper, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := safeNext(r.URL.Query().Get("next"))
		if !gate.Enabled() {
			http.Redirect(w, r, next, http.StatusSeeOther)
			return
		}
		pages.Render(w, r, http.StatusOK, "access.html", PageData{Title: "Access", Next: next})
	}
}

// Unlock troca o código pelo cookie de sessão. Aceita formulário ou JSON.
func Unlock(gate gating.Gatekeeper, pages *Pages, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccessRequest
		jsonRequest := isJSONRequest(r)

		if jsonRequest {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				pages.Render(w, r, http.StatusBadRequest, "access.html", PageData{Title: "Access", Error: "Invalid request"})
				return
			}
			req.Code = r.PostFormValue("code")
			req.Next = r.PostFormValue("next")
		}
		next := safeNext(req.Next)

		if !gate.Enabled() {
			if jsonRequest {
				writeJSON(w, r, http.StatusOK, AccessResponse{Next: next})
				return
			}
			http.Redirect(w, r, next, http.StatusSeeOther)
			return
		}

		token, expiresAt, err := gate.Unlock(req.Code)
		if err != nil {
			handleUnlockError(w, r, pages, err, next, jsonRequest)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     gating.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		log.ForContext(r.Context()).Info("Sessão desbloqueada")

		if jsonRequest {
			writeJSON(w, r, http.StatusOK, AccessResponse{ExpiresAt: expiresAt, Next: next})
			return
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

// Logout remove o cookie de sessão
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     gating.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if isJSONRequest(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, "/access", http.StatusSeeOther)
	}
}

// handleUnlockError trata os erros do gate e devolve a resposta apropriada
func handleUnlockError(w http.ResponseWriter, r *http.Request, pages *Pages, err error, next string, jsonRequest bool) {
	var gateErr *gating.GateError
	if !errors.As(err, &gateErr) {
		if jsonRequest {
			writeInternalError(w, r, err, "Erro ao validar código de acesso")
			return
		}
		log.ForContext(r.Context()).WithError(err).Error("Erro ao validar código de acesso")
		pages.Render(w, r, http.StatusInternalServerError, "access.html", PageData{Title: "Access", Next: next, Error: "Something went wrong"})
		return
	}

	if jsonRequest {
		apiErrors.WriteError(w, gateErr.Code, gateErr.Err.Error(), nil)
		return
	}

	message := "Invalid access code"
	if errors.Is(err, gating.ErrMissingCode) {
		message = "Enter the access code"
	}
	pages.Render(w, r, apiErrors.StatusOf(gateErr.Code), "access.html", PageData{Title: "Access", Next: next, Error: message})
}
