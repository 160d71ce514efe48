package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
	"github.com/vfg2006/agency-dashboard/pkg/log"
)

// APIPrefix é o prefixo das rotas JSON
const APIPrefix = "/v1"

// pathFromRequest usa o caminho ainda escapado para que um id com "/" codificado
// continue sendo um único segmento
func pathFromRequest(r *http.Request) domain.Path {
	return domain.ParsePath(strings.TrimPrefix(r.URL.EscapedPath(), APIPrefix))
}

func loadLevel(viewer viewing.Viewer, r *http.Request) (*domain.LevelView, int, error) {
	path := pathFromRequest(r)
	view, err := viewer.Level(path)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if view.NotFound {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":       path.URL(),
			"invalid_at": view.InvalidAt,
		}).Info("Caminho não resolvido")
		return view, http.StatusNotFound, nil
	}
	return view, http.StatusOK, nil
}

// ManagerPage renderiza a visão de um nível em HTML
func ManagerPage(viewer viewing.Viewer, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, status, err := loadLevel(viewer, r)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar visão do nível")
			http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			return
		}

		title := view.Title
		if view.NotFound {
			title = "Not found"
		}
		pages.Render(w, r, status, "level.html", PageData{Title: title, View: view})
	}
}

// ManagerJSON retorna a mesma visão em JSON. Um caminho inválido responde 404
// com o breadcrumb preenchido.
func ManagerJSON(viewer viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, status, err := loadLevel(viewer, r)
		if err != nil {
			writeInternalError(w, r, err, "Erro ao montar visão do nível")
			return
		}
		writeJSON(w, r, status, view)
	}
}

// SummaryPage renderiza o resumo executivo em HTML
func SummaryPage(viewer viewing.Viewer, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := viewer.Summary()
		pages.Render(w, r, http.StatusOK, "summary.html", PageData{Title: "Summary", Summary: summary})
	}
}

// SummaryJSON retorna o resumo executivo
func SummaryJSON(viewer viewing.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, viewer.Summary())
	}
}
