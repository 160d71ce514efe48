package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/pkg/log"
	"github.com/vfg2006/agency-dashboard/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"isLast":     func(i, n int) bool { return i == n-1 },
	"pathEscape": url.PathEscape,
	"currency":   utils.FormatCurrency,
	"segmentAt": func(crumbs []domain.Crumb, i int) string {
		if i < 0 || i >= len(crumbs) {
			return ""
		}
		return crumbs[i].Label
	},
}

// PageData é o modelo comum das páginas HTML
type PageData struct {
	Title       string
	Agency      string
	GateEnabled bool
	View        *domain.LevelView
	Summary     *domain.ExecutiveSummary
	Next        string
	Error       string
}

// Pages renderiza os templates embutidos
type Pages struct {
	templates   *template.Template
	agency      string
	gateEnabled bool
}

func NewPages(agency string, gateEnabled bool) (*Pages, error) {
	templates, err := template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{templates: templates, agency: agency, gateEnabled: gateEnabled}, nil
}

// Render executa o template em memória para que um erro vire 500 sem resposta parcial
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, name string, data PageData) {
	data.Agency = p.agency
	data.GateEnabled = p.gateEnabled

	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("template", name).Error("Erro ao renderizar página")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página")
	}
}
